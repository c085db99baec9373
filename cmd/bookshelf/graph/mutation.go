package graph

import (
	"context"

	"github.com/tjper/bookshelf/cmd/bookshelf/controller"
	bookerrors "github.com/tjper/bookshelf/cmd/bookshelf/errors"
	gerrors "github.com/tjper/bookshelf/internal/graph/errors"
)

type addBookArgs struct {
	Title       *string
	Author      *string
	Description *string
}

func (r *Resolver) AddBook(ctx context.Context, args addBookArgs) (*bookResolver, error) {
	book, err := r.ctrl.CreateBook(
		ctx,
		controller.CreateBookInput{
			Title:       valueOf(args.Title),
			Author:      valueOf(args.Author),
			Description: args.Description,
		},
	)
	if valErr := bookerrors.AsValidationError(err); valErr != nil {
		return nil, gerrors.NewBadUserInput(valErr, valErr.Fields())
	}
	if err != nil {
		return nil, err
	}

	return toBookResolver(*book), nil
}
