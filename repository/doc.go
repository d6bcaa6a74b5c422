// Package repository wires declared query methods into a callable
// repository over a store client.
//
// A repository is declared once, at initialization, from a set of method
// definitions. Declaration problems (unnamed or duplicated parameters)
// fail construction rather than the first call:
//
//	repo, err := repository.New[store.Entity](client,
//	    repository.Def[store.Entity]{
//	        Name:   "findByAuthor",
//	        Params: []string{"author"},
//	        GQL:    `SELECT * FROM Book WHERE author = @author`,
//	        Process: identity,
//	    },
//	)
//
//	results, err := repo.Call(ctx, "findByAuthor", "Orwell")
//
// After construction the repository is immutable and safe for concurrent
// use.
package repository
