package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"globeview/pkg/camera"
)

func TestOverlayReportsFPSAndHeight(t *testing.T) {
	cam := camera.New(camera.Options{StartHeight: 0.25})
	l := &Loop{state: NewState(cam)}

	assert.Equal(t, "FPS: 0 - camera height: 0.250", l.Overlay())

	l.fps = 60
	assert.Equal(t, "FPS: 60 - camera height: 0.250", l.Overlay())
}
