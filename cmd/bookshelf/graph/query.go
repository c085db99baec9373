package graph

import (
	"context"
	"errors"

	bookerrors "github.com/tjper/bookshelf/cmd/bookshelf/errors"
)

func (r *Resolver) Books(ctx context.Context) ([]*bookResolver, error) {
	books, err := r.ctrl.Books(ctx)
	if err != nil {
		return nil, err
	}

	return toBookResolvers(books), nil
}

// BookByTitle resolves to null when no book has the title.
func (r *Resolver) BookByTitle(ctx context.Context, args struct{ Title string }) (*bookResolver, error) {
	book, err := r.ctrl.BookByTitle(ctx, args.Title)
	if errors.Is(err, bookerrors.ErrBookDNE) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return toBookResolver(*book), nil
}

func (r *Resolver) BooksByAuthor(ctx context.Context, args struct{ Author string }) ([]*bookResolver, error) {
	books, err := r.ctrl.BooksByAuthor(ctx, args.Author)
	if err != nil {
		return nil, err
	}

	return toBookResolvers(books), nil
}
