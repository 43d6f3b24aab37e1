// Package dispatcher provides the error-interception layer wrapped around
// the application's central action dispatcher.
//
// Errors raised by dispatched actions run through an ordered chain of
// handlers. Each handler either declares the error handled (returns nil,
// stopping the chain) or passes an error on to the next handler, possibly
// rewritten with more context. Whatever survives the chain reaches the
// final presenter unchanged.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
)

// ErrorClass classifies git errors at the dispatcher boundary. The
// underlying classification comes from the git layer; handlers only branch
// on the class.
type ErrorClass int

// Error classes handlers care about.
const (
	ClassUnknown ErrorClass = iota
	ClassNotARepository
	ClassAuthentication
	ClassNetwork
)

func (c ErrorClass) String() string {
	switch c {
	case ClassNotARepository:
		return "not-a-repository"
	case ClassAuthentication:
		return "authentication"
	case ClassNetwork:
		return "network"
	}
	return "unknown"
}

// Repository identifies a locally tracked repository.
type Repository struct {
	ID   int64
	Path string
}

// ClassifiedError attaches an error class and the affected repository to
// an underlying error.
type ClassifiedError struct {
	Class      ErrorClass
	Repository *Repository
	Err        error
}

// Classify wraps err with a class and the repository it concerns.
func Classify(err error, class ErrorClass, repo *Repository) *ClassifiedError {
	return &ClassifiedError{Class: class, Repository: repo, Err: err}
}

func (e *ClassifiedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Class, e.Err)
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// ErrorHandler inspects an error and returns nil when it handled it, or an
// error (the same one, or a rewrite carrying more context) to pass to the
// next handler in the chain.
type ErrorHandler func(ctx context.Context, err error) error

// Chain runs handlers in registration order.
type Chain struct {
	handlers []ErrorHandler
}

// NewChain creates a Chain from handlers, most specific first.
func NewChain(handlers ...ErrorHandler) *Chain {
	return &Chain{handlers: handlers}
}

// Append adds a handler at the end of the chain.
func (c *Chain) Append(h ErrorHandler) {
	c.handlers = append(c.handlers, h)
}

// Handle runs err through the chain. It returns nil as soon as a handler
// declares the error handled; otherwise it returns whatever error the last
// handler passed on, for final presentation.
func (c *Chain) Handle(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	for _, h := range c.handlers {
		err = h(ctx, err)
		if err == nil {
			return nil
		}
	}
	return err
}

// Store is the slice of application state the repository handlers need:
// the current selection, and a way to flag a repository as missing on disk.
type Store interface {
	SelectedRepository() *Repository
	UpdateRepositoryMissing(repo *Repository, missing bool)
}

// MissingRepositoryHandler downgrades not-a-repository errors to handled,
// but only when the affected repository is the currently selected one: the
// repository was moved or deleted from under the selection, which the UI
// surfaces through the missing-repository state rather than an error
// dialog. Every other error passes through unchanged.
func MissingRepositoryHandler(store Store) ErrorHandler {
	return func(_ context.Context, err error) error {
		var ce *ClassifiedError
		if !errors.As(err, &ce) || ce.Class != ClassNotARepository || ce.Repository == nil {
			return err
		}

		selected := store.SelectedRepository()
		if selected == nil || selected.ID != ce.Repository.ID {
			return err
		}

		store.UpdateRepositoryMissing(ce.Repository, true)
		return nil
	}
}
