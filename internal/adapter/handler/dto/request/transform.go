package request

// ResizeParams accompany a one-shot resize upload. Aspect ratio is unlocked
// by default so the result has exactly the requested dimensions.
type ResizeParams struct {
	Width           int  `form:"width" binding:"required,gt=0"`
	Height          int  `form:"height" binding:"required,gt=0"`
	LockAspectRatio bool `form:"lock_aspect_ratio"`
}

// RotateParams accompany a one-shot rotate upload. Degrees is a pointer so
// an explicit 0 still binds.
type RotateParams struct {
	Degrees   *float64 `form:"degrees" binding:"required"`
	Direction string   `form:"direction" binding:"omitempty,oneof=R r L l"`
}

// StoredResizeParams resize a stored image. The aspect ratio is locked
// unless the client opts out.
type StoredResizeParams struct {
	Width           int   `form:"width" binding:"required,gt=0"`
	Height          int   `form:"height" binding:"required,gt=0"`
	LockAspectRatio *bool `form:"lock_aspect_ratio"`
}

func (p StoredResizeParams) Locked() bool {
	if p.LockAspectRatio == nil {
		return true
	}
	return *p.LockAspectRatio
}

// StoredRotateParams rotate a stored image; degrees must be a multiple of
// 90, which the service enforces.
type StoredRotateParams struct {
	Degrees   *int   `form:"degrees" binding:"required"`
	Direction string `form:"direction" binding:"omitempty,oneof=R r L l"`
}

type ListParams struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}
