package gpu

import (
	"context"
	"errors"
	"fmt"

	"github.com/raycekar/raycekar/rt/compile"
	"github.com/raycekar/raycekar/rt/logging"
	"github.com/raycekar/raycekar/rt/pick"

	"github.com/cogentcore/webgpu/wgpu"
)

// Binding slots shared with the compute program.
const (
	BindingTypes    = 1
	BindingInts     = 2
	BindingFloats   = 3
	BindingContacts = 4
)

const (
	// HeadroomStreams is spare space allocated on growth so that adding a
	// few objects does not reallocate every frame.
	HeadroomStreams = 4 * 1024
	minBufferSize   = 16
)

var ErrMapFailed = errors.New("contact read-back mapping failed")

// BufferSet owns the storage buffers the compute program reads the scene
// from and writes the contact buffer into.
type BufferSet struct {
	Device *wgpu.Device
	Width  int
	Height int

	TypesBuf    *wgpu.Buffer
	IntsBuf     *wgpu.Buffer
	FloatsBuf   *wgpu.Buffer
	ContactBuf  *wgpu.Buffer
	ReadbackBuf *wgpu.Buffer

	// Generation increases whenever a buffer is reallocated, so bind
	// groups built from Entries must be rebuilt.
	Generation uint64

	digest   uint64
	uploaded bool

	logger logging.Logger
}

func NewBufferSet(device *wgpu.Device, width, height int, logger logging.Logger) (*BufferSet, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", width, height)
	}
	s := &BufferSet{
		Device: device,
		Width:  width,
		Height: height,
		logger: logging.OrNop(logger),
	}

	contactSize := uint64(width * height * 4)
	var err error
	s.ContactBuf, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ContactBuf",
		Size:  contactSize,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create contact buffer: %w", err)
	}
	s.ReadbackBuf, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ContactReadbackBuf",
		Size:  contactSize,
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		s.ContactBuf.Release()
		return nil, fmt.Errorf("create contact read-back buffer: %w", err)
	}
	return s, nil
}

// paddedSize is the allocation size for a stream of n bytes.
func paddedSize(n int, headroom int) uint64 {
	size := uint64(n + headroom)
	if size < minBufferSize {
		size = minBufferSize
	}
	if size%4 != 0 {
		size += 4 - (size % 4)
	}
	return size
}

func (s *BufferSet) ensureBuffer(name string, buf **wgpu.Buffer, data []byte) (bool, error) {
	current := *buf
	grown := false
	if current == nil || current.GetSize() < uint64(len(data)) || current.GetSize() < minBufferSize {
		if current != nil {
			current.Release()
		}
		newBuf, err := s.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            name,
			Size:             paddedSize(len(data), HeadroomStreams),
			Usage:            wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return false, fmt.Errorf("create %s: %w", name, err)
		}
		*buf = newBuf
		grown = true
		s.logger.Debugf("Allocated %s (%d bytes)", name, newBuf.GetSize())
	}
	if len(data) > 0 {
		if err := s.Device.GetQueue().WriteBuffer(*buf, 0, data); err != nil {
			return grown, fmt.Errorf("write %s: %w", name, err)
		}
	}
	return grown, nil
}

// Upload writes the three scene streams, growing their buffers as needed.
// Streams identical to the previous upload are not written again.
func (s *BufferSet) Upload(bufs compile.Buffers) error {
	digest := bufs.Digest()
	if s.uploaded && digest == s.digest {
		return nil
	}
	streams := []struct {
		name string
		buf  **wgpu.Buffer
		data []byte
	}{
		{"TypesBuf", &s.TypesBuf, bufs.Types},
		{"IntsBuf", &s.IntsBuf, bufs.Ints},
		{"FloatsBuf", &s.FloatsBuf, bufs.Floats},
	}
	for _, st := range streams {
		grown, err := s.ensureBuffer(st.name, st.buf, st.data)
		if err != nil {
			return err
		}
		if grown {
			s.Generation++
		}
	}
	s.digest, s.uploaded = digest, true
	return nil
}

// Entries returns the bind group entries for the scene and contact buffers.
// Upload must have run at least once.
func (s *BufferSet) Entries() []wgpu.BindGroupEntry {
	return []wgpu.BindGroupEntry{
		{Binding: BindingTypes, Buffer: s.TypesBuf, Size: wgpu.WholeSize},
		{Binding: BindingInts, Buffer: s.IntsBuf, Size: wgpu.WholeSize},
		{Binding: BindingFloats, Buffer: s.FloatsBuf, Size: wgpu.WholeSize},
		{Binding: BindingContacts, Buffer: s.ContactBuf, Size: wgpu.WholeSize},
	}
}

// CopyContacts records the copy of the contact buffer into the read-back
// buffer. Call it after the pass that writes contacts.
func (s *BufferSet) CopyContacts(encoder *wgpu.CommandEncoder) {
	encoder.CopyBufferToBuffer(s.ContactBuf, 0, s.ReadbackBuf, 0, s.ContactBuf.GetSize())
}

// ReadContacts maps the read-back buffer, blocking until the device has
// finished the copy, and decodes it.
func (s *BufferSet) ReadContacts() (pick.ContactBuffer, error) {
	size := s.ReadbackBuf.GetSize()
	status := wgpu.BufferMapAsyncStatus(0)
	done := false
	s.ReadbackBuf.MapAsync(wgpu.MapModeRead, 0, size, func(st wgpu.BufferMapAsyncStatus) {
		status = st
		done = true
	})
	for !done {
		s.Device.Poll(true, nil)
	}
	if status != wgpu.BufferMapAsyncStatusSuccess {
		return pick.ContactBuffer{}, fmt.Errorf("%w: status %v", ErrMapFailed, status)
	}
	defer s.ReadbackBuf.Unmap()

	data := s.ReadbackBuf.GetMappedRange(0, uint(size))
	return pick.DecodeContacts(s.Width, s.Height, data)
}

func (s *BufferSet) Release() {
	for _, b := range []**wgpu.Buffer{&s.TypesBuf, &s.IntsBuf, &s.FloatsBuf, &s.ContactBuf, &s.ReadbackBuf} {
		if *b != nil {
			(*b).Release()
			*b = nil
		}
	}
	s.uploaded = false
}

// DispatchFunc records the compute work for one frame. It is given the
// buffer set so it can (re)build its bind group from Entries.
type DispatchFunc func(ctx context.Context, encoder *wgpu.CommandEncoder, set *BufferSet) error

// Backend drives a BufferSet through one frame: upload, dispatch, copy and
// read back. Program compilation and the dispatch itself are supplied by
// the caller.
type Backend struct {
	Set      *BufferSet
	Dispatch DispatchFunc
}

func (b *Backend) Upload(bufs compile.Buffers) error {
	return b.Set.Upload(bufs)
}

func (b *Backend) Render(ctx context.Context) error {
	if b.Dispatch == nil {
		return errors.New("gpu backend has no dispatch function")
	}
	encoder, err := b.Set.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := b.Dispatch(ctx, encoder, b.Set); err != nil {
		encoder.Release()
		return err
	}
	b.Set.CopyContacts(encoder)

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}
	b.Set.Device.GetQueue().Submit(cmd)
	return nil
}

func (b *Backend) Contacts() (pick.ContactBuffer, error) {
	return b.Set.ReadContacts()
}
