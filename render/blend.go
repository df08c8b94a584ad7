package render

// BlendMode selects the compositing operation for Buffer.Set
type BlendMode uint8

const (
	BlendReplace BlendMode = iota
	BlendAlpha
	BlendAdd
	BlendScreen
)
