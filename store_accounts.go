package login

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-login/sparql"
)

type accountStore struct {
	client StoreClient
	graph  string
}

// NewAccountStore returns an AccountStore reading and writing the given
// users graph. The client is expected to carry elevated (sudo) access:
// credential checks run before the caller holds any authorization.
func NewAccountStore(client StoreClient, graph string) AccountStore {
	return &accountStore{client: client, graph: graph}
}

func (s *accountStore) ActiveByNickname(ctx context.Context, nickname string) (*AccountCredentials, error) {
	query := fmt.Sprintf(`SELECT ?uri ?uuid ?password ?salt WHERE {
  GRAPH %[1]s {
    ?uri a %[2]s ;
         %[3]s %[4]s ;
         %[5]s ?password ;
         %[6]s ?salt ;
         %[7]s ?uuid .
    FILTER NOT EXISTS { ?uri %[8]s %[9]s }
  }
}`,
		sparql.EscapeURI(s.graph),
		sparql.EscapeURI(foafOnlineAccount),
		sparql.EscapeURI(foafAccountName),
		sparql.EscapeString(nickname),
		sparql.EscapeURI(accountPassword),
		sparql.EscapeURI(accountSalt),
		sparql.EscapeURI(muUUID),
		sparql.EscapeURI(accountStatus),
		sparql.EscapeURI(accountStatusInactive),
	)

	res, err := s.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	if res.Empty() {
		return nil, nil
	}

	row := res.Results.Bindings[0]
	return &AccountCredentials{
		URI:          row.Value("uri"),
		UUID:         row.Value("uuid"),
		PasswordHash: row.Value("password"),
		Salt:         row.Value("salt"),
	}, nil
}

func (s *accountStore) InactiveByNickname(ctx context.Context, nickname string) (*AccountRef, error) {
	query := fmt.Sprintf(`SELECT ?uri ?uuid WHERE {
  GRAPH %[1]s {
    ?uri a %[2]s ;
         %[3]s %[4]s ;
         %[5]s ?uuid ;
         %[6]s %[7]s .
    FILTER NOT EXISTS { ?uri %[8]s ?password }
  }
}`,
		sparql.EscapeURI(s.graph),
		sparql.EscapeURI(foafOnlineAccount),
		sparql.EscapeURI(foafAccountName),
		sparql.EscapeString(nickname),
		sparql.EscapeURI(muUUID),
		sparql.EscapeURI(accountStatus),
		sparql.EscapeURI(accountStatusInactive),
		sparql.EscapeURI(accountPassword),
	)

	res, err := s.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	if res.Empty() {
		return nil, nil
	}

	row := res.Results.Bindings[0]
	return &AccountRef{
		URI:  row.Value("uri"),
		UUID: row.Value("uuid"),
	}, nil
}

func (s *accountStore) SavePassword(ctx context.Context, accountURI, nickname, passwordHash, salt string) error {
	del := fmt.Sprintf(`DELETE {
  GRAPH %[1]s {
    %[2]s %[3]s ?password ;
          %[4]s ?salt ;
          %[5]s ?nickname .
  }
}
WHERE {
  GRAPH %[1]s {
    OPTIONAL { %[2]s %[3]s ?password . }
    OPTIONAL { %[2]s %[4]s ?salt . }
    OPTIONAL { %[2]s %[5]s ?nickname . }
  }
}`,
		sparql.EscapeURI(s.graph),
		sparql.EscapeURI(accountURI),
		sparql.EscapeURI(accountPassword),
		sparql.EscapeURI(accountSalt),
		sparql.EscapeURI(foafAccountName),
	)

	if err := s.client.Update(ctx, del); err != nil {
		return fmt.Errorf("removing previous credentials: %w", err)
	}

	ins := fmt.Sprintf(`INSERT DATA {
  GRAPH %[1]s {
    %[2]s %[3]s %[4]s ;
          %[5]s %[6]s ;
          %[7]s %[8]s .
  }
}`,
		sparql.EscapeURI(s.graph),
		sparql.EscapeURI(accountURI),
		sparql.EscapeURI(accountPassword),
		sparql.EscapeString(passwordHash),
		sparql.EscapeURI(accountSalt),
		sparql.EscapeString(salt),
		sparql.EscapeURI(foafAccountName),
		sparql.EscapeString(nickname),
	)

	if err := s.client.Update(ctx, ins); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}

	return nil
}

func (s *accountStore) Activate(ctx context.Context, accountURI string) error {
	del := fmt.Sprintf(`DELETE {
  GRAPH %[1]s { %[2]s %[3]s ?status . }
}
WHERE {
  GRAPH %[1]s { %[2]s %[3]s ?status . }
}`,
		sparql.EscapeURI(s.graph),
		sparql.EscapeURI(accountURI),
		sparql.EscapeURI(accountStatus),
	)

	if err := s.client.Update(ctx, del); err != nil {
		return fmt.Errorf("removing previous status: %w", err)
	}

	ins := fmt.Sprintf(`INSERT DATA {
  GRAPH %s { %s %s %s . }
}`,
		sparql.EscapeURI(s.graph),
		sparql.EscapeURI(accountURI),
		sparql.EscapeURI(accountStatus),
		sparql.EscapeURI(accountStatusActive),
	)

	if err := s.client.Update(ctx, ins); err != nil {
		return fmt.Errorf("writing active status: %w", err)
	}

	return touchModified(ctx, s.client, s.graph, accountURI, time.Now())
}

func (s *accountStore) Roles(ctx context.Context, accountURI string) ([]Role, error) {
	query := fmt.Sprintf(`SELECT ?role WHERE {
  GRAPH %[1]s {
    %[2]s a %[3]s ;
          %[4]s ?role .
  }
}`,
		sparql.EscapeURI(s.graph),
		sparql.EscapeURI(accountURI),
		sparql.EscapeURI(foafOnlineAccount),
		sparql.EscapeURI(extRole),
	)

	res, err := s.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	roles := make([]Role, 0, len(res.Results.Bindings))
	for _, row := range res.Results.Bindings {
		roles = append(roles, row.Value("role"))
	}

	return roles, nil
}
