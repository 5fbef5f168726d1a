// Package streamloader decodes images from io.Reader streams by driving the
// pull-based decoder core through read/skip/eof callbacks.
//
// Every buffer the core hands out is copied into caller-owned memory and
// released before the call returns, on success and on every failure path.
package streamloader

import (
	"errors"
	"io"
	"iter"

	"github.com/user/imgstream/pkg/adapters/logger"
	"github.com/user/imgstream/pkg/core"
	"github.com/user/imgstream/pkg/ports"
)

// Loader decodes still images and GIF animations from streams.
//
// A Loader binds one stream at a time and reuses its scratch buffer across
// calls, so it must not be used from several goroutines at once. Use one
// Loader per goroutine for concurrent decoding.
type Loader struct {
	bridge *bridge
	limits core.Limits
	logger ports.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for per-call debug output.
func WithLogger(log ports.Logger) Option {
	return func(l *Loader) {
		l.logger = log.WithComponent("streamloader")
	}
}

// WithLimits overrides the core's dimension limits.
func WithLimits(limits core.Limits) Option {
	return func(l *Loader) {
		l.limits = limits
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		bridge: newBridge(),
		limits: core.DefaultLimits,
		logger: logger.NewNoop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Read decodes a single image from r. The stream is read from its current
// position and is never closed.
func (l *Loader) Read(r io.Reader, req ports.ColorComponents) (*ports.Image, error) {
	if !req.Valid() {
		return nil, ErrInvalidComponents
	}

	l.bridge.bind(r)
	defer l.bridge.unbind()

	buf, w, h, comp, err := l.limits.LoadFromCallbacks(l.bridge, int(req))
	defer core.Free(buf)
	if err != nil {
		return nil, l.failure("decode", err)
	}

	img, err := l.own(buf, w, h, ports.ColorComponents(comp), req)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("Decoded %dx%d image: %d source components, %d returned", w, h, int(img.SourceComp), int(img.Comp))
	return img, nil
}

// ReadAnimatedGif decodes every frame of a GIF animation in playback order.
// A stream that ends cleanly between blocks yields the frames read so far;
// damaged frame data fails the whole call.
func (l *Loader) ReadAnimatedGif(r io.Reader, req ports.ColorComponents) ([]ports.AnimatedFrame, error) {
	frames := []ports.AnimatedFrame{}
	for frame, err := range l.Frames(r, req) {
		if err != nil {
			return nil, err
		}
		frames = append(frames, *frame)
	}
	return frames, nil
}

// Frames returns an iterator over the frames of a GIF animation. The stream
// is bound when iteration starts and unbound when it stops, including when
// the consumer breaks out early. At most one error is yielded, and it ends
// the sequence.
func (l *Loader) Frames(r io.Reader, req ports.ColorComponents) iter.Seq2[*ports.AnimatedFrame, error] {
	return func(yield func(*ports.AnimatedFrame, error) bool) {
		if !req.Valid() {
			yield(nil, ErrInvalidComponents)
			return
		}

		l.bridge.bind(r)
		defer l.bridge.unbind()

		ctx := core.StartCallbacks(l.bridge)
		if !core.GifTest(ctx) {
			if err := l.bridge.err; err != nil {
				yield(nil, err)
				return
			}
			yield(nil, &DecodeError{Op: "decode frames", Kind: ErrUnsupportedFormat, Reason: "input stream is not a GIF file"})
			return
		}

		g := core.NewGifState()
		defer g.Release()

		for {
			frame, err := l.nextFrame(ctx, g, req)
			if err != nil {
				yield(nil, err)
				return
			}
			if frame == nil {
				l.logger.Debug("Animation ended after %d frames", g.Frames())
				return
			}
			if !yield(frame, nil) {
				return
			}
		}
	}
}

// nextFrame decodes one frame and releases its core buffer before returning.
func (l *Loader) nextFrame(ctx *core.Context, g *core.GifState, req ports.ColorComponents) (*ports.AnimatedFrame, error) {
	buf, comp, err := l.limits.GifLoadNext(ctx, g, int(req))
	defer core.Free(buf)
	if err != nil {
		return nil, l.failure("decode frames", err)
	}
	if serr := l.bridge.err; serr != nil {
		l.logger.Debug("Stream error: %s", serr)
		return nil, serr
	}
	if buf == nil {
		return nil, nil
	}

	img, err := l.own(buf, g.Width(), g.Height(), ports.ColorComponents(comp), req)
	if err != nil {
		return nil, err
	}
	frame := &ports.AnimatedFrame{Image: *img, Delay: g.Delay()}
	l.logger.Debug("Decoded frame %d: %dx%d, delay %d ms", g.Frames()-1, frame.Width, frame.Height, frame.Delay)
	return frame, nil
}

// own copies a core buffer into a caller-owned image.
func (l *Loader) own(buf *core.Buffer, w, h int, source, req ports.ColorComponents) (*ports.Image, error) {
	comp := req
	if comp == ports.Default {
		comp = source
	}
	n := w * h * int(comp)
	if buf.Len() < n {
		return nil, &DecodeError{Op: "decode", Kind: ErrMalformedData, Reason: "decoder returned a short pixel buffer"}
	}
	data := make([]byte, n)
	copy(data, buf.Bytes()[:n])
	return &ports.Image{
		Width:      w,
		Height:     h,
		SourceComp: source,
		Comp:       comp,
		Data:       data,
	}, nil
}

// failure maps a core error to the loader's error values. A stream error
// recorded by the bridge takes priority and is returned unchanged, since the
// core only ever sees it as missing data.
func (l *Loader) failure(op string, err error) error {
	if serr := l.bridge.err; serr != nil {
		l.logger.Debug("Stream error: %s", serr)
		return serr
	}
	var cerr *core.Error
	if !errors.As(err, &cerr) {
		return err
	}
	switch {
	case errors.Is(cerr, core.ErrUnrecognized):
		return &DecodeError{Op: op, Kind: ErrUnsupportedFormat, Reason: cerr.Reason}
	case errors.Is(cerr, core.ErrBadRequest):
		return ErrInvalidComponents
	default:
		return &DecodeError{Op: op, Kind: ErrMalformedData, Reason: cerr.Reason}
	}
}

// Decode implements ports.ImageDecoder.
func (l *Loader) Decode(r io.Reader, req ports.ColorComponents) (*ports.Image, error) {
	return l.Read(r, req)
}

// DecodeAnimated implements ports.ImageDecoder.
func (l *Loader) DecodeAnimated(r io.Reader, req ports.ColorComponents) ([]ports.AnimatedFrame, error) {
	return l.ReadAnimatedGif(r, req)
}

var _ ports.ImageDecoder = (*Loader)(nil)
