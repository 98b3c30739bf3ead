package http

import (
	"net/url"
	"strconv"

	apierrors "o3profile/internal/errors"
	"o3profile/pkg/contracts/domain"
)

// parseParams merges query parameters over the configured defaults. Range and
// step checks live in the profile package; this only rejects values that do
// not parse at all.
func parseParams(q url.Values, defaults domain.Params, resolvePath func(string) string) (domain.Params, error) {
	params := defaults

	if v := q.Get("bin"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, apierrors.ErrValidation("bin", "must be an integer")
		}
		params.BinWidth = n
	}

	if v := q.Get("window"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, apierrors.ErrValidation("window", "must be an integer")
		}
		params.Window = n
	}

	params.ShowRaw = parseToggle(q["raw"], params.ShowRaw)
	params.ShowBand = parseToggle(q["band"], params.ShowBand)

	if v := q.Get("source"); v != "" {
		params.Source = resolvePath(v)
	}

	return params, nil
}

// parseToggle reads a checkbox-style parameter. The form submits both a
// checkbox value and a hidden "false" fallback, so any "true" among the
// values wins; an absent parameter keeps the default.
func parseToggle(values []string, def bool) bool {
	if len(values) == 0 {
		return def
	}
	for _, v := range values {
		if v == "true" || v == "1" || v == "on" {
			return true
		}
	}
	return false
}
