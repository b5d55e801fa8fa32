package nurbs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Scope is the set of resources a name is resolved in. Any fs.FS works,
// including embed.FS, os.DirFS and testing/fstest.MapFS.
type Scope = fs.FS

// Resource is a resolved, readable curve document.
type Resource interface {
	Name() string
	ReadAll() ([]byte, error)
}

// Resolver maps a resource name within a scope to a Resource. A name that
// cannot be resolved yields an error wrapping ErrResourceNotFound.
type Resolver interface {
	Resolve(name string, scope Scope) (Resource, error)
}

// DirScope returns a scope rooted at dir.
func DirScope(dir string) Scope {
	return os.DirFS(dir)
}

// MainBundle returns a scope rooted at the directory holding the running
// executable.
func MainBundle() (Scope, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	return os.DirFS(filepath.Dir(exe)), nil
}

// FSResolver resolves names as regular files inside the scope. It only
// checks that the file exists; contents are read later by Resource.ReadAll.
type FSResolver struct{}

// Resolve implements Resolver.
func (FSResolver) Resolve(name string, scope Scope) (Resource, error) {
	if scope == nil {
		return nil, fmt.Errorf("%w: %q: nil scope", ErrResourceNotFound, name)
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %q: invalid name", ErrResourceNotFound, name)
	}
	info, err := fs.Stat(scope, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceNotFound, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory", ErrResourceNotFound, name)
	}
	return fsResource{fsys: scope, name: name}, nil
}

type fsResource struct {
	fsys fs.FS
	name string
}

func (r fsResource) Name() string { return r.name }

func (r fsResource) ReadAll() ([]byte, error) {
	return fs.ReadFile(r.fsys, r.name)
}

// SearchPathResolver tries the scope it is given first and then each of
// Fallbacks in order. Errors other than ErrResourceNotFound stop the search.
type SearchPathResolver struct {
	// Resolver does the lookup in each scope. Nil means FSResolver.
	Resolver  Resolver
	Fallbacks []Scope
}

// Resolve implements Resolver.
func (r SearchPathResolver) Resolve(name string, scope Scope) (Resource, error) {
	inner := r.Resolver
	if inner == nil {
		inner = FSResolver{}
	}

	scopes := make([]Scope, 0, len(r.Fallbacks)+1)
	if scope != nil {
		scopes = append(scopes, scope)
	}
	scopes = append(scopes, r.Fallbacks...)

	for _, s := range scopes {
		res, err := inner.Resolve(name, s)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrResourceNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %q not found in %d scopes", ErrResourceNotFound, name, len(scopes))
}
