package button

import "strings"

// Validate checks the required fields and returns a copy with user, repo and
// type trimmed and normalized. Checks run in order user, type, repo so a bad
// type is reported as such even when the repo is also blank.
func Validate(req Request) (Request, error) {
	req.User = strings.TrimSpace(req.User)
	if req.User == "" {
		return Request{}, ErrMissingUser
	}

	typ, err := ParseType(string(req.Type))
	if err != nil {
		return Request{}, err
	}
	req.Type = typ

	req.Repo = strings.TrimSpace(req.Repo)
	if req.Repo == "" && typ.RequiresRepo() {
		return Request{}, ErrMissingRepo
	}
	return req, nil
}
