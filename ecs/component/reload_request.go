package component

// ReloadRequest is a marker used to ask the reload system to re-read a
// prefab spec from disk. The watcher creates a short-lived entity with it.
type ReloadRequest struct {
	Spec string
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
