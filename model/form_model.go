package model

// SetOptions tags a value written back to the host form.
type SetOptions struct {
	ShouldDirty    bool
	ShouldValidate bool
}
