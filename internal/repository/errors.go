// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// string matching on driver errors.
package repository

import "errors"

// ErrNotFound is returned when an update or delete targets a row that does
// not exist. Handlers should translate this into an HTTP 404 response.
// Note that a missing profile on the read path is NOT an error; see
// ProfileRepo.Get.
var ErrNotFound = errors.New("not found")

// ErrNoProfile is returned by mutations that require an existing profile
// row (e.g. attaching hero/about images) when none has been created yet.
var ErrNoProfile = errors.New("no profile exists")
