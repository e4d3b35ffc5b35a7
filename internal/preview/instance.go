// internal/preview/instance.go
package preview

import (
	"adproof/internal/geometry"
	"adproof/internal/layout"
	"adproof/internal/render"
)

// Instance binds one catalog slot to the shared studio. It holds no state
// of its own; frames are re-derived from the studio on every read.
type Instance struct {
	Slot   geometry.Slot
	studio *Studio
}

// Instances returns one instance per catalog slot, in catalog order.
func Instances(studio *Studio) []*Instance {
	slots := geometry.Catalog()
	out := make([]*Instance, len(slots))
	for i, s := range slots {
		out[i] = &Instance{Slot: s, studio: studio}
	}
	return out
}

// Frame composes the instance's layout from the current shared state.
func (i *Instance) Frame() layout.Frame {
	snap := i.studio.Snapshot()
	img, _ := i.studio.library.Image(snap.ImageIndex)
	return layout.Compose(i.Slot.Width, i.Slot.Height, snap.Content, snap.Transform, img != nil)
}

// Render rasterizes the instance at the given pixel ratio. State is read
// once up front, so concurrent renders each work from their own immutable
// snapshot.
func (i *Instance) Render(pixelRatio float64) ([]byte, error) {
	snap := i.studio.Snapshot()
	img, _ := i.studio.library.Image(snap.ImageIndex)
	frame := layout.Compose(i.Slot.Width, i.Slot.Height, snap.Content, snap.Transform, img != nil)
	return render.PNG(frame, img, pixelRatio)
}

// FileName is the export name for this slot.
func (i *Instance) FileName() string {
	return i.Slot.FileName()
}
