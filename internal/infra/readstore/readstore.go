package readstore

import (
	"wishkeeper/internal/infra"
	"wishkeeper/internal/pkg/pgconv"
)

// wrapReadErr maps absent rows to KindNotFound and everything else to
// KindDBFailure.
func wrapReadErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(infra.KindNotFound, msg, err)
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
