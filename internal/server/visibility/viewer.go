// Package visibility decides who may read a diary entry. It is pure: the
// friendship answer is supplied by the caller, so every rule can be tested
// without a store.
package visibility

import "context"

// Viewer is the identity making a read request: anonymous, or authenticated
// as a profile. The zero value is anonymous.
type Viewer struct {
	profileID     int64
	authenticated bool
}

func Anonymous() Viewer {
	return Viewer{}
}

func Authenticated(profileID int64) Viewer {
	return Viewer{profileID: profileID, authenticated: true}
}

func (v Viewer) IsAnonymous() bool {
	return !v.authenticated
}

// ProfileID returns the viewer's profile id and whether there is one.
func (v Viewer) ProfileID() (int64, bool) {
	return v.profileID, v.authenticated
}

// Owns reports whether the viewer is authenticated as profileID.
func (v Viewer) Owns(profileID int64) bool {
	return v.authenticated && v.profileID == profileID
}

type viewerKey struct{}

// WithViewer stores v in ctx for handlers further down the chain.
func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, v)
}

// FromContext returns the viewer stored by WithViewer, or an anonymous one.
func FromContext(ctx context.Context) Viewer {
	if v, ok := ctx.Value(viewerKey{}).(Viewer); ok {
		return v
	}
	return Anonymous()
}
