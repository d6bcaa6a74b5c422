// Package gqltest provides test doubles for the query pipeline.
//
// FakeClient implements store.Client with scripted responses, so pipeline
// behavior can be tested without a Datastore emulator:
//
//	fake := gqltest.NewFakeClient()
//	fake.QueueEntities(gqltest.BookEntity("1984", "Orwell"))
//
//	q := query.New(method, fake, template, processor)
//	results, err := q.Execute(ctx, "Orwell")
//
// Every BoundQuery the fake receives is recorded for assertions.
package gqltest
