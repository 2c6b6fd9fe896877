package login

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-login/sparql"
)

type sessionStore struct {
	client        StoreClient
	graph         string
	accountsGraph string
}

// NewSessionStore returns a SessionStore writing the given sessions graph.
// Resolving a session joins into the accounts graph, which may be a
// different partition when session data is managed separately from
// identity data.
func NewSessionStore(client StoreClient, graph, accountsGraph string) SessionStore {
	return &sessionStore{
		client:        client,
		graph:         graph,
		accountsGraph: accountsGraph,
	}
}

func (s *sessionStore) AccountBySession(ctx context.Context, sessionURI string) (*AccountRef, error) {
	query := fmt.Sprintf(`SELECT ?uuid ?account WHERE {
  GRAPH %[1]s {
    %[2]s %[3]s ?account .
  }
  GRAPH %[4]s {
    ?account %[5]s ?uuid ;
             a %[6]s .
  }
}`,
		sparql.EscapeURI(s.graph),
		sparql.EscapeURI(sessionURI),
		sparql.EscapeURI(sessionAccount),
		sparql.EscapeURI(s.accountsGraph),
		sparql.EscapeURI(muUUID),
		sparql.EscapeURI(foafOnlineAccount),
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
		URI:  row.Value("account"),
		UUID: row.Value("uuid"),
	}, nil
}

func (s *sessionStore) SessionsForAccount(ctx context.Context, accountURI string) ([]string, error) {
	query := fmt.Sprintf(`SELECT ?uri WHERE {
  GRAPH %[1]s {
    ?uri %[2]s %[3]s ;
         %[4]s ?id .
  }
}`,
		sparql.EscapeURI(s.graph),
		sparql.EscapeURI(sessionAccount),
		sparql.EscapeURI(accountURI),
		sparql.EscapeURI(muUUID),
	)

	res, err := s.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	uris := make([]string, 0, len(res.Results.Bindings))
	for _, row := range res.Results.Bindings {
		uris = append(uris, row.Value("uri"))
	}

	return uris, nil
}

func (s *sessionStore) ClearSession(ctx context.Context, sessionURI string) error {
	update := fmt.Sprintf(`DELETE {
  GRAPH %[1]s {
    %[2]s %[3]s ?account ;
          %[4]s ?id ;
          %[5]s ?role ;
          %[6]s ?modified .
  }
}
WHERE {
  GRAPH %[1]s {
    %[2]s %[3]s ?account ;
          %[4]s ?id .
    OPTIONAL { %[2]s %[5]s ?role . }
    OPTIONAL { %[2]s %[6]s ?modified . }
  }
}`,
		sparql.EscapeURI(s.graph),
		sparql.EscapeURI(sessionURI),
		sparql.EscapeURI(sessionAccount),
		sparql.EscapeURI(muUUID),
		sparql.EscapeURI(extSessionRole),
		sparql.EscapeURI(dctModified),
	)

	return s.client.Update(ctx, update)
}

func (s *sessionStore) DeleteForAccount(ctx context.Context, accountURI string) error {
	update := fmt.Sprintf(`DELETE {
  GRAPH %[1]s {
    ?session %[2]s %[3]s ;
             %[4]s ?id ;
             %[5]s ?role ;
             %[6]s ?modified .
  }
}
WHERE {
  GRAPH %[1]s {
    ?session %[2]s %[3]s ;
             %[4]s ?id .
    OPTIONAL { ?session %[5]s ?role . }
    OPTIONAL { ?session %[6]s ?modified . }
  }
}`,
		sparql.EscapeURI(s.graph),
		sparql.EscapeURI(sessionAccount),
		sparql.EscapeURI(accountURI),
		sparql.EscapeURI(muUUID),
		sparql.EscapeURI(extSessionRole),
		sparql.EscapeURI(dctModified),
	)

	return s.client.Update(ctx, update)
}

func (s *sessionStore) Insert(ctx context.Context, sessionURI, accountURI, sessionID string, roles []Role) error {
	var b strings.Builder

	fmt.Fprintf(&b, `INSERT DATA {
  GRAPH %[1]s {
    %[2]s %[3]s %[4]s ;
          %[5]s %[6]s .
`,
		sparql.EscapeURI(s.graph),
		sparql.EscapeURI(sessionURI),
		sparql.EscapeURI(sessionAccount),
		sparql.EscapeURI(accountURI),
		sparql.EscapeURI(muUUID),
		sparql.EscapeString(sessionID),
	)

	for _, role := range roles {
		fmt.Fprintf(&b, "    %s %s %s .\n",
			sparql.EscapeURI(sessionURI),
			sparql.EscapeURI(extSessionRole),
			sparql.EscapeString(role),
		)
	}

	b.WriteString("  }\n}")

	return s.client.Update(ctx, b.String())
}

func (s *sessionStore) Touch(ctx context.Context, sessionURI string, at time.Time) error {
	return touchModified(ctx, s.client, s.graph, sessionURI, at)
}
