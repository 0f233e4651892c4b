package tournament

import "github.com/hashicorp/go-multierror"

// Store is implemented by tournament/store's Postgres-backed persistence.
// Defined here (rather than imported) so the tournament package itself
// never depends on a database driver; only the CLI wires a concrete Store
// in when --db-url is set.
type Store interface {
	SaveRanking(startedAt int64, report Report) error
}

func combineErrors(errs ...error) error {
	var combined *multierror.Error
	for _, err := range errs {
		if err != nil {
			combined = multierror.Append(combined, err)
		}
	}
	return combined.ErrorOrNil()
}
