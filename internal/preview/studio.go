// internal/preview/studio.go
//
// Studio is the single observable state container behind every preview:
// one live CreativeContent and one ImageTransform, mutated atomically,
// with a version bump and a subscriber notification per mutation. All
// preview instances derive from this container rather than holding
// copies.
package preview

import (
	"errors"
	"image"
	"sync"

	"adproof/internal/assets"
	"adproof/internal/drag"
	"adproof/internal/geometry"
	"adproof/internal/layout"
	"adproof/internal/models"
)

var ErrImageIndex = errors.New("image index out of range")

// Event is one state-change notification delivered to subscribers.
type Event struct {
	Version uint64 `json:"version"`
	Change  string `json:"change"`
}

// Snapshot is an immutable copy of the studio state taken under the lock.
type Snapshot struct {
	Content    models.CreativeContent `json:"content"`
	Transform  models.ImageTransform  `json:"transform"`
	ImageIndex int                    `json:"image_index"`
	Version    uint64                 `json:"version"`
}

// PointerResult reports whether a pointer sample was tracked and the
// offset in effect afterwards.
type PointerResult struct {
	Tracking bool          `json:"tracking"`
	Offset   models.Offset `json:"offset"`
	Version  uint64        `json:"version"`
}

type Studio struct {
	mu         sync.Mutex
	content    models.CreativeContent
	transform  models.ImageTransform
	imageIndex int
	version    uint64
	library    *assets.Library
	drag       *drag.Controller
	subs       map[int]chan Event
	nextSubID  int
}

func NewStudio(library *assets.Library) *Studio {
	return &Studio{
		content: models.CreativeContent{
			Headline:    "Your headline here",
			Subhead:     "Add a supporting line for larger formats",
			CTALabel:    "Learn More",
			AccentColor: "#E94560",
		},
		transform:  models.ImageTransform{Scale: 1.0},
		imageIndex: -1,
		library:    library,
		drag:       drag.NewController(),
		subs:       map[int]chan Event{},
	}
}

func (s *Studio) snapshotLocked() Snapshot {
	return Snapshot{
		Content:    s.content,
		Transform:  s.transform,
		ImageIndex: s.imageIndex,
		Version:    s.version,
	}
}

func (s *Studio) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Studio) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// bumpLocked advances the version and notifies subscribers. A slow
// subscriber loses events rather than blocking a mutation.
func (s *Studio) bumpLocked(change string) Snapshot {
	s.version++
	ev := Event{Version: s.version, Change: change}
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	return s.snapshotLocked()
}

// Subscribe registers a state-change listener. The returned cancel func
// must be called when the listener goes away.
func (s *Studio) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	ch := make(chan Event, 16)
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// UpdateContent applies the set fields of req to the shared content.
func (s *Studio) UpdateContent(req *models.UpdateContentRequest) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Headline != nil {
		s.content.Headline = *req.Headline
	}
	if req.Subhead != nil {
		s.content.Subhead = *req.Subhead
	}
	if req.CTALabel != nil {
		s.content.CTALabel = *req.CTALabel
	}
	if req.AccentColor != nil {
		s.content.AccentColor = *req.AccentColor
	}
	if req.DarkTheme != nil {
		s.content.DarkTheme = *req.DarkTheme
	}
	return s.bumpLocked("content")
}

func (s *Studio) SetScale(scale float64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transform.Scale = models.ClampScale(scale)
	return s.bumpLocked("scale")
}

func (s *Studio) SetOffset(x, y float64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transform.Offset = models.Offset{X: x, Y: y}
	return s.bumpLocked("offset")
}

// SelectImage activates the library variant at index; -1 clears the
// active image. The library only ever grows, so a stored index stays
// valid.
func (s *Studio) SelectImage(index int) (Snapshot, error) {
	if index < -1 || index >= s.library.Len() {
		return s.Snapshot(), ErrImageIndex
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imageIndex = index
	return s.bumpLocked("image"), nil
}

// ApplyPreset restores a saved snapshot into the live state exactly.
func (s *Studio) ApplyPreset(p *models.Preset) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = p.Content
	s.transform.Scale = models.ClampScale(p.Transform.Scale)
	s.transform.Offset = p.Transform.Offset
	return s.bumpLocked("preset")
}

// Pointer feeds one pointer sample into the drag controller. Only the
// primary catalog slot tracks gestures; a down must land on the image
// region of that slot's current frame while an image is active. Samples
// failing the gate report tracking=false without touching state.
func (s *Studio) Pointer(ev *models.PointerEventRequest) PointerResult {
	slot, found := geometry.Find(ev.Slot)

	s.mu.Lock()
	defer s.mu.Unlock()

	result := PointerResult{Offset: s.transform.Offset, Version: s.version}
	if !found || !slot.Primary {
		return result
	}

	switch ev.Phase {
	case models.PointerDown:
		if s.imageIndex < 0 {
			return result
		}
		frame := layout.Compose(slot.Width, slot.Height, s.content, s.transform, true)
		if !frame.Image.Rect.Contains(ev.X, ev.Y) {
			return result
		}
		s.drag.Down(
			drag.Point{X: ev.X, Y: ev.Y},
			drag.Point{X: s.transform.Offset.X, Y: s.transform.Offset.Y},
		)
		result.Tracking = true
		return result

	case models.PointerMove:
		next, ok := s.drag.Move(drag.Point{X: ev.X, Y: ev.Y})
		if !ok {
			return result
		}
		s.transform.Offset = models.Offset{X: next.X, Y: next.Y}
		snap := s.bumpLocked("offset")
		return PointerResult{Tracking: true, Offset: snap.Transform.Offset, Version: snap.Version}

	default:
		// Up and pointer-leave end the gesture; the last offset stays.
		result.Tracking = s.drag.State() == drag.StateDragging
		s.drag.Up()
		return result
	}
}

// ActiveImage returns the decoded image the studio currently points at.
func (s *Studio) ActiveImage() (image.Image, bool) {
	s.mu.Lock()
	idx := s.imageIndex
	s.mu.Unlock()

	if idx < 0 {
		return nil, false
	}
	return s.library.Image(idx)
}

func (s *Studio) HasImage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imageIndex >= 0
}
