package gateway

import (
	"net/url"
	"strings"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/transport"
)

// NewSet wires every gateway over the same transport.
func NewSet(doer transport.Doer, tokens transport.TokenSource) Set {
	return Set{
		Auth:     NewAuthGateway(doer, tokens),
		Topics:   NewTopicsGateway(doer),
		Sheets:   NewSheetsGateway(doer),
		Problems: NewProblemsGateway(doer),
		Users:    NewUsersGateway(doer),
	}
}

type validator interface {
	Validate() error
}

func validate(what string, v validator) error {
	if err := v.Validate(); err != nil {
		return errors.NewDecodeError(what, err)
	}
	return nil
}

func validateAll[T validator](what string, items []T) error {
	for _, item := range items {
		if err := validate(what, item); err != nil {
			return err
		}
	}
	return nil
}

// entityPath builds "/<collection>/<escaped id><suffix>" after rejecting blank ids.
func entityPath(collection, id, suffix string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", errors.NewValidationError(collection+" id", "cannot be empty")
	}
	return "/" + collection + "/" + url.PathEscape(id) + suffix, nil
}
