package service

// ownedResource is anything with an owner and a visibility flag.
// Both models.Entry and models.Snippet satisfy it.
type ownedResource interface {
	OwnerID() string
	Public() bool
}

// canRead decides whether the caller may see the resource. Private
// resources of other users fail with the caller-supplied not found
// error, never a permission error: revealing that the resource exists
// would leak exactly what privacy is supposed to hide. An empty
// callerID denotes an anonymous caller.
func canRead(res ownedResource, callerID string, notFound error) error {
	if res.Public() {
		return nil
	}
	if callerID == "" || callerID != res.OwnerID() {
		return notFound
	}
	return nil
}

// canWrite decides whether the caller may modify the resource. Unlike
// reads, a failed write on an existing resource is a permission error:
// the existence check has already passed by the time ownership is
// evaluated.
func canWrite(res ownedResource, callerID string) error {
	if callerID != res.OwnerID() {
		return ErrNotResourceOwner
	}
	return nil
}
