package transform

import (
	"fmt"

	"github.com/dino50687/imgcrypt/internal/pixel"
)

type channelRotateTransform struct{}

func (channelRotateTransform) Method() Method { return ChannelRotate }

func (channelRotateTransform) Describe() Description {
	return Description{
		Summary:       "Rotate color channels: 1 gives (R,G,B) -> (B,R,G), 2 gives (R,G,B) -> (G,B,R)",
		Parameters:    []string{"rotation 1|2 (default 1)"},
		Reversibility: "exact, inverted by the other rotation",
	}
}

func (channelRotateTransform) Validate(p Params) error {
	if p.Rotation != 1 && p.Rotation != 2 {
		return fmt.Errorf("%w: rotation %d (want 1 or 2)", ErrInvalidParameter, p.Rotation)
	}

	return nil
}

func (t channelRotateTransform) Apply(buf *pixel.Buffer, p Params) error {
	if err := t.Validate(p); err != nil {
		return err
	}

	rotateChannels(buf, p.Rotation)

	return nil
}

func (t channelRotateTransform) Invert(buf *pixel.Buffer, p Params) error {
	if err := t.Validate(p); err != nil {
		return err
	}

	rotateChannels(buf, 3-p.Rotation)

	return nil
}

// rotateChannels moves the channel at index c to index (c+rotation) mod 3.
func rotateChannels(buf *pixel.Buffer, rotation int) {
	pix := buf.Pix

	for i := 0; i < len(pix); i += pixel.Channels {
		r, g, b := pix[i], pix[i+1], pix[i+2]

		switch rotation {
		case 1:
			pix[i], pix[i+1], pix[i+2] = b, r, g
		case 2:
			pix[i], pix[i+1], pix[i+2] = g, b, r
		}
	}
}
