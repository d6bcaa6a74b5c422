package store

import (
	"context"
	"fmt"
	"log/slog"

	apiv1 "cloud.google.com/go/datastore/apiv1"
	pb "cloud.google.com/go/datastore/apiv1/datastorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/forgo/gqlbind/gql"
)

// Datastore implements the Client interface over the Cloud Datastore gRPC
// API. The low-level apiv1 client is used because the high-level datastore
// client does not expose GQL queries.
type Datastore struct {
	client *apiv1.Client
	config Config
	log    *slog.Logger
}

// NewDatastore connects a new Datastore client. When cfg.EmulatorHost is
// set the client dials the emulator without credentials; otherwise
// application default credentials apply. Extra client options are passed
// through to the underlying transport.
func NewDatastore(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Datastore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if cfg.EmulatorHost != "" {
		opts = append([]option.ClientOption{
			option.WithEndpoint(cfg.EmulatorHost),
			option.WithoutAuthentication(),
			option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		}, opts...)
	}

	client, err := apiv1.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return &Datastore{
		client: client,
		config: cfg,
		log:    slog.Default(),
	}, nil
}

// Close closes the underlying gRPC connection.
func (d *Datastore) Close() error {
	if d.client != nil {
		return d.client.Close()
	}
	return nil
}

// RunGQL executes a bound GQL query and returns an iterator over the
// matching entities. Literals are disallowed in the query string; every
// value must arrive through a named binding.
//
// Results are returned one batch at a time; the iterator's end cursor can
// be bound into a follow-up query for pagination.
func (d *Datastore) RunGQL(ctx context.Context, q *gql.BoundQuery) (Iterator, error) {
	if d.client == nil {
		return nil, ErrConnection
	}

	named := make(map[string]*pb.GqlQueryParameter, q.Len())
	for _, b := range q.Bindings() {
		param, err := bindingParameter(d.config.ProjectID, b.Value)
		if err != nil {
			return nil, err
		}
		named[b.Tag] = param
	}

	req := &pb.RunQueryRequest{
		ProjectId:  d.config.ProjectID,
		DatabaseId: d.config.DatabaseID,
		PartitionId: &pb.PartitionId{
			ProjectId:   d.config.ProjectID,
			NamespaceId: d.config.Namespace,
		},
		QueryType: &pb.RunQueryRequest_GqlQuery{
			GqlQuery: &pb.GqlQuery{
				QueryString:   q.GQL(),
				AllowLiterals: false,
				NamedBindings: named,
			},
		},
	}

	resp, err := d.client.RunQuery(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if resp.Batch == nil {
		return nil, nil
	}

	d.log.Debug("gql query executed",
		slog.String("query", q.GQL()),
		slog.Int("bindings", q.Len()),
		slog.Int("results", len(resp.Batch.EntityResults)),
	)

	return &batchIterator{
		results:   resp.Batch.EntityResults,
		endCursor: resp.Batch.EndCursor,
	}, nil
}

// batchIterator iterates a single query result batch.
type batchIterator struct {
	results   []*pb.EntityResult
	endCursor []byte
	next      int
}

func (it *batchIterator) Next() (Entity, error) {
	if it.next >= len(it.results) {
		return Entity{}, iterator.Done
	}
	r := it.results[it.next]
	it.next++
	return protoToEntity(r.Entity), nil
}

// Cursor returns the batch's end cursor, bindable into a follow-up query.
func (it *batchIterator) Cursor() gql.Cursor {
	return gql.Cursor(it.endCursor)
}
