package login

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-login/sparql"
)

// touchModified replaces the dct:modified value on a resource with a
// delete-then-insert pair. Two updates instead of one so the insert also
// lands when no previous value existed.
func touchModified(ctx context.Context, client StoreClient, graph, resourceURI string, at time.Time) error {
	del := fmt.Sprintf(`DELETE {
  GRAPH %[1]s { %[2]s %[3]s ?modified . }
}
WHERE {
  GRAPH %[1]s { %[2]s %[3]s ?modified . }
}`,
		sparql.EscapeURI(graph),
		sparql.EscapeURI(resourceURI),
		sparql.EscapeURI(dctModified),
	)

	if err := client.Update(ctx, del); err != nil {
		return fmt.Errorf("removing modified stamp: %w", err)
	}

	ins := fmt.Sprintf(`INSERT DATA {
  GRAPH %s { %s %s %s . }
}`,
		sparql.EscapeURI(graph),
		sparql.EscapeURI(resourceURI),
		sparql.EscapeURI(dctModified),
		sparql.EscapeDateTime(at),
	)

	if err := client.Update(ctx, ins); err != nil {
		return fmt.Errorf("writing modified stamp: %w", err)
	}

	return nil
}
