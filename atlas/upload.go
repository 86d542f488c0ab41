package atlas

import "github.com/gogpu/gpucontext"

// Uploader moves a composed atlas bitmap to the GPU.
//
// Implementations allocate (or reuse) a texture of img.Format.GPUFormat()
// with the image dimensions and write img.Data into it.
type Uploader interface {
	UploadAtlas(img *Image) (gpucontext.Texture, error)
}

// UploaderFunc adapts a function to the Uploader interface.
type UploaderFunc func(img *Image) (gpucontext.Texture, error)

// UploadAtlas calls f(img).
func (f UploaderFunc) UploadAtlas(img *Image) (gpucontext.Texture, error) {
	return f(img)
}
