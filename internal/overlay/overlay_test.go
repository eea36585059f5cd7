package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ambient-trail/internal/component"
	"ambient-trail/internal/config"
	"ambient-trail/internal/event"
)

func newMounted(t *testing.T) (*Overlay, *event.Dispatcher) {
	t.Helper()
	cfg := config.DefaultTrail()
	cfg.Seed = 11
	o := New(cfg, nil)
	d := event.NewDispatcher()
	o.Mount(d)
	d.Dispatch(event.Event{Type: event.SurfaceResized, Data: event.Resize{Width: 800, Height: 600, Scale: 1}})
	return o, d
}

func move(d *event.Dispatcher, x, y float64) {
	d.Dispatch(event.Event{Type: event.PointerMoved, Data: event.Pointer{X: x, Y: y}})
}

func TestPointerMoveAddsBatch(t *testing.T) {
	o, d := newMounted(t)
	move(d, 10, 10)
	assert.Equal(t, config.SpawnBatch, o.Count())
}

func TestTenMovesThenQuiet(t *testing.T) {
	o, d := newMounted(t)
	for i := 0; i < 10; i++ {
		move(d, float64(i*5), 100)
	}
	require.Equal(t, 40, o.Count())

	for i := 0; i <= int(config.LifeMax); i++ {
		o.Frame()
	}
	assert.Equal(t, 0, o.Count())
}

type snapshot struct {
	x, y, vx, vy, age float64
}

func collect(o *Overlay) []snapshot {
	var out []snapshot
	o.Each(func(p *component.Particle, _ float64) {
		out = append(out, snapshot{p.X, p.Y, p.VX, p.VY, p.Age})
	})
	return out
}

func TestResizeLeavesParticlesAlone(t *testing.T) {
	o, d := newMounted(t)
	move(d, 300, 300)
	o.Frame()
	o.Frame()
	before := collect(o)

	d.Dispatch(event.Event{Type: event.SurfaceResized, Data: event.Resize{Width: 1920, Height: 1080, Scale: 2}})

	assert.Equal(t, before, collect(o))
	w, h := o.Surface().Backing()
	assert.Equal(t, 3840, w)
	assert.Equal(t, 2160, h)
}

func TestUnmountDetachesEverything(t *testing.T) {
	o, d := newMounted(t)
	for i := 0; i < 5; i++ {
		move(d, 1, 1)
		o.Frame()
	}
	o.Unmount()

	assert.False(t, o.Mounted())
	assert.Equal(t, 0, d.ListenerCount(event.PointerMoved))
	assert.Equal(t, 0, d.ListenerCount(event.SurfaceResized))

	move(d, 5, 5)
	o.OnEvent(event.Event{Type: event.PointerMoved, Data: event.Pointer{X: 5, Y: 5}})
	o.Frame()
	assert.Equal(t, 0, o.Count())
}

func TestUnmountIsIdempotent(t *testing.T) {
	o, d := newMounted(t)
	o.Unmount()
	o.Unmount()
	assert.Equal(t, 0, d.ListenerCount(event.PointerMoved))
}

func TestMountTwiceSubscribesOnce(t *testing.T) {
	o, d := newMounted(t)
	o.Mount(d)
	assert.Equal(t, 1, d.ListenerCount(event.PointerMoved))
	move(d, 0, 0)
	assert.Equal(t, config.SpawnBatch, o.Count())
}

func TestUnmountMidFrame(t *testing.T) {
	o, d := newMounted(t)
	move(d, 0, 0)

	visited := 0
	o.Each(func(*component.Particle, float64) {
		visited++
		o.Unmount()
	})
	assert.Equal(t, config.SpawnBatch, visited)

	o.Frame()
	assert.Equal(t, uint64(0), o.Frames())
	assert.Equal(t, 0, o.Count())
}

func TestFrameIsNoopBeforeSurfaceReady(t *testing.T) {
	o := New(config.DefaultTrail(), nil)
	d := event.NewDispatcher()
	o.Mount(d)
	move(d, 1, 1)

	o.Frame()
	assert.Equal(t, uint64(0), o.Frames())
	o.Each(func(p *component.Particle, _ float64) {
		assert.Equal(t, 0.0, p.Age)
	})
}

func TestIndependentInstances(t *testing.T) {
	a, da := newMounted(t)
	b, _ := newMounted(t)
	move(da, 1, 1)
	assert.Equal(t, config.SpawnBatch, a.Count())
	assert.Equal(t, 0, b.Count())
}

func TestRemountStartsClean(t *testing.T) {
	o, d := newMounted(t)
	move(d, 1, 1)
	o.Unmount()
	o.Mount(d)
	assert.Equal(t, 0, o.Count())
	move(d, 1, 1)
	assert.Equal(t, config.SpawnBatch, o.Count())
}
