package login_test

import (
	"context"

	"github.com/goliatone/go-login/sparql"
)

// fakeStoreClient records the SPARQL text the gateways produce and plays
// back canned results.
type fakeStoreClient struct {
	queries []string
	updates []string
	results *sparql.Results
	err     error
}

func (f *fakeStoreClient) Query(ctx context.Context, query string) (*sparql.Results, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	if f.results != nil {
		return f.results, nil
	}
	return &sparql.Results{}, nil
}

func (f *fakeStoreClient) Update(ctx context.Context, update string) error {
	f.updates = append(f.updates, update)
	return f.err
}

func bindings(rows ...sparql.Binding) *sparql.Results {
	res := &sparql.Results{}
	res.Results.Bindings = rows
	return res
}

func literal(value string) sparql.Term {
	return sparql.Term{Type: "literal", Value: value}
}

func uri(value string) sparql.Term {
	return sparql.Term{Type: "uri", Value: value}
}
