package app_test

import (
	"context"
	"errors"
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"lifefb/internal/app"
	"lifefb/internal/core"
	fb "lifefb/internal/framebuffer"
	"lifefb/internal/render"
	"lifefb/internal/sims/life"
	"lifefb/internal/surface/headless"
)

var t0 = time.Unix(1_700_000_000, 0)

type harness struct {
	surface *headless.Surface
	fb      *fb.Framebuffer
	grid    *life.Grid
	loop    *app.Loop
	now     time.Time
}

func newHarness(w, h int, gridCfg life.Config, opts ...app.Option) *harness {
	hs := &harness{surface: headless.New(w, h), now: t0}
	hs.fb = fb.New(hs.surface, w, h)
	hs.grid = life.New(w, h, gridCfg.Interval)
	renderer, err := render.New(render.Config{
		TileSize:   1,
		Mode:       render.ModeFlat,
		Background: "#000000",
		Alive:      "#ffffff",
		Cursor:     "#ff0000",
	}, hs.grid.Size())
	Expect(err).NotTo(HaveOccurred())
	opts = append([]app.Option{app.WithClock(func() time.Time { return hs.now })}, opts...)
	hs.loop, err = app.NewLoop(hs.fb, hs.grid, renderer, gridCfg, opts...)
	Expect(err).NotTo(HaveOccurred())
	return hs
}

// frameAt advances the fake clock to t0+d and runs one frame.
func (hs *harness) frameAt(d time.Duration) bool {
	hs.now = t0.Add(d)
	return hs.loop.Frame()
}

func blinker(g *life.Grid) {
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)
}

type drivenSurface struct {
	*headless.Surface
	ticks int
}

func (d *drivenSurface) Drive(frame func() bool) error {
	for frame() {
		d.ticks++
	}
	return nil
}

var _ = Describe("Loop", func() {
	var (
		hs  *harness
		cfg life.Config
	)

	BeforeEach(func() {
		cfg = life.Config{Width: 5, Height: 5, Interval: 100 * time.Millisecond, Density: 0.5, Seed: 7}
		hs = newHarness(5, 5, cfg)
		blinker(hs.grid)
		hs.loop.Start(t0)
	})

	Context("stepping", func() {
		It("advances only after the interval has elapsed", func() {
			Expect(hs.frameAt(50 * time.Millisecond)).To(BeTrue())
			Expect(hs.grid.Generation()).To(BeZero())
			Expect(hs.frameAt(100 * time.Millisecond)).To(BeTrue())
			Expect(hs.grid.Generation()).To(Equal(uint64(1)))
			Expect(hs.grid.Alive(1, 2)).To(BeTrue())
		})

		It("presents the painted grid", func() {
			hs.frameAt(0)
			frame := hs.surface.LastFrame()
			Expect(frame).To(HaveLen(25))
			Expect(frame[1*5+2]).To(Equal(fb.White))
			Expect(frame[0]).To(Equal(fb.Black))
			Expect(hs.surface.Status()).To(ContainSubstring("gen 0"))
			Expect(hs.surface.Status()).To(ContainSubstring("pop 3"))
		})

		It("records population history", func() {
			hs.frameAt(100 * time.Millisecond)
			hs.frameAt(200 * time.Millisecond)
			Expect(hs.loop.Stats().Generations).To(Equal(uint64(2)))
			Expect(hs.loop.Stats().History()).To(Equal([]float64{3, 3, 3}))
			Expect(hs.loop.Stats().Frames).To(Equal(2))
		})

		It("keeps the generation total across reseeds and clears", func() {
			hs.frameAt(100 * time.Millisecond)
			hs.frameAt(200 * time.Millisecond)

			hs.surface.Press(fb.KeyLetter('R'))
			hs.frameAt(250 * time.Millisecond)
			Expect(hs.grid.Generation()).To(BeZero())
			Expect(hs.loop.Stats().Generations).To(Equal(uint64(2)))

			hs.frameAt(350 * time.Millisecond)
			Expect(hs.grid.Generation()).To(Equal(uint64(1)))
			Expect(hs.loop.Stats().Generations).To(Equal(uint64(3)))

			hs.surface.Press(fb.KeyLetter('C'))
			hs.frameAt(400 * time.Millisecond)
			hs.frameAt(450 * time.Millisecond)
			Expect(hs.grid.Generation()).To(Equal(uint64(1)))
			Expect(hs.loop.Stats().Generations).To(Equal(uint64(4)))
		})
	})

	Context("key bindings", func() {
		It("stops on Escape", func() {
			hs.surface.Press(fb.KeyEscape)
			Expect(hs.frameAt(0)).To(BeFalse())
			Expect(hs.fb.IsRunning()).To(BeFalse())
			Expect(hs.surface.Frames()).To(BeZero())
		})

		It("pauses and single-steps", func() {
			hs.surface.Press(fb.KeySpace)
			hs.frameAt(100 * time.Millisecond)
			Expect(hs.loop.Paused()).To(BeTrue())
			Expect(hs.grid.Generation()).To(BeZero())

			hs.surface.Press(fb.KeyLetter('N'))
			hs.frameAt(150 * time.Millisecond)
			Expect(hs.grid.Generation()).To(Equal(uint64(1)))

			hs.frameAt(400 * time.Millisecond)
			Expect(hs.grid.Generation()).To(Equal(uint64(1)))

			hs.surface.Press(fb.KeySpace)
			hs.frameAt(500 * time.Millisecond)
			Expect(hs.loop.Paused()).To(BeFalse())
			Expect(hs.grid.Generation()).To(Equal(uint64(2)))
		})

		It("holds a single step until the gate opens", func() {
			hs.surface.Press(fb.KeySpace, fb.KeyLetter('N'))
			hs.frameAt(40 * time.Millisecond)
			Expect(hs.grid.Generation()).To(BeZero())
			hs.frameAt(100 * time.Millisecond)
			Expect(hs.grid.Generation()).To(Equal(uint64(1)))
		})

		It("toggles the cell under the cursor without touching the timer", func() {
			Expect(hs.loop.Cursor().Position()).To(Equal(core.Cell{X: 2, Y: 2}))
			hs.surface.Press(fb.KeyArrowRight, fb.KeyArrowDown, fb.KeyEnter)
			hs.frameAt(10 * time.Millisecond)
			Expect(hs.loop.Cursor().Position()).To(Equal(core.Cell{X: 3, Y: 3}))
			Expect(hs.grid.Alive(3, 3)).To(BeTrue())
			Expect(hs.grid.Generation()).To(BeZero())
			Expect(hs.grid.LastUpdate()).To(Equal(t0))
		})

		It("clamps the cursor to the board", func() {
			for i := 0; i < 10; i++ {
				hs.surface.Press(fb.KeyArrowLeft, fb.KeyArrowUp)
			}
			hs.frameAt(0)
			Expect(hs.loop.Cursor().Position()).To(Equal(core.Cell{}))
		})

		It("clears and reseeds", func() {
			hs.surface.Press(fb.KeyLetter('C'))
			hs.frameAt(0)
			Expect(hs.grid.Population()).To(BeZero())

			hs.surface.Press(fb.KeyLetter('R'))
			hs.frameAt(10 * time.Millisecond)
			want := life.New(5, 5, 0)
			want.Generate(cfg.Seed, cfg.Density)
			Expect(slices.Equal(hs.grid.Cells(), want.Cells())).To(BeTrue())
			Expect(hs.grid.Generation()).To(BeZero())
		})

		It("changes the interval within bounds", func() {
			hs.surface.Press(fb.KeyPlus)
			hs.frameAt(0)
			Expect(hs.grid.Interval()).To(Equal(50 * time.Millisecond))

			hs.surface.Press(fb.KeyMinus, fb.KeyMinus)
			hs.frameAt(0)
			Expect(hs.grid.Interval()).To(Equal(200 * time.Millisecond))

			for i := 0; i < 12; i++ {
				hs.surface.Press(fb.KeyPlus)
			}
			hs.frameAt(0)
			Expect(hs.grid.Interval()).To(Equal(10 * time.Millisecond))

			for i := 0; i < 20; i++ {
				hs.surface.Press(fb.KeyMinus)
			}
			hs.frameAt(0)
			Expect(hs.grid.Interval()).To(Equal(5 * time.Second))
		})

		It("toggles gradient and blend", func() {
			Expect(hs.loop.Status().Gradient).To(BeFalse())
			Expect(hs.loop.Status().Blend).To(BeFalse())
			hs.surface.Press(fb.KeyLetter('G'), fb.KeyLetter('B'))
			hs.frameAt(0)
			Expect(hs.loop.Renderer().Mode()).To(Equal(render.ModeGradient))
			Expect(hs.loop.Status().Blend).To(BeTrue())
			Expect(hs.surface.Status()).To(ContainSubstring("gradient"))
		})
	})

	Context("Run", func() {
		It("ends when presenting fails", func() {
			hs = newHarness(5, 5, cfg)
			hs.surface.FailPresentAfter(2)
			Expect(hs.loop.Run(context.Background())).To(Succeed())
			Expect(hs.surface.Frames()).To(Equal(2))
			Expect(hs.loop.Frames()).To(Equal(3))
			Expect(hs.fb.IsRunning()).To(BeFalse())

			Expect(hs.fb.Close()).To(Succeed())
			Expect(hs.fb.Close()).To(Succeed())
			Expect(hs.surface.Closed()).To(Equal(1))
		})

		It("ends on a quit request", func() {
			hs = newHarness(5, 5, cfg)
			hs.surface.RequestQuit()
			Expect(hs.loop.Run(context.Background())).To(Succeed())
			Expect(hs.loop.Frames()).To(BeZero())
		})

		It("ends when the context is cancelled", func() {
			hs = newHarness(5, 5, cfg)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			Expect(hs.loop.Run(ctx)).To(Succeed())
			Expect(hs.loop.Frames()).To(BeZero())
			Expect(hs.fb.IsRunning()).To(BeFalse())
		})

		It("honours the frame limit and cap", func() {
			var slept []time.Duration
			hs = newHarness(5, 5, cfg,
				app.WithMaxFrames(3),
				app.WithFrameInterval(20*time.Millisecond),
				app.WithSleep(func(d time.Duration) { slept = append(slept, d) }),
			)
			Expect(hs.loop.Run(context.Background())).To(Succeed())
			Expect(hs.surface.Frames()).To(Equal(3))
			Expect(slept).To(Equal([]time.Duration{20 * time.Millisecond, 20 * time.Millisecond}))
		})

		It("reports progress per frame", func() {
			var seen []int
			hs = newHarness(5, 5, cfg, app.WithMaxFrames(2), app.WithProgress(func(n int) { seen = append(seen, n) }))
			Expect(hs.loop.Run(context.Background())).To(Succeed())
			Expect(seen).To(Equal([]int{1, 2}))
		})

		It("hands control to surfaces that drive themselves", func() {
			driven := &drivenSurface{Surface: headless.New(5, 5)}
			buf := fb.New(driven, 5, 5)
			grid := life.New(5, 5, cfg.Interval)
			rcfg := render.DefaultConfig()
			rcfg.TileSize = 1
			renderer, err := render.New(rcfg, grid.Size())
			Expect(err).NotTo(HaveOccurred())
			loop, err := app.NewLoop(buf, grid, renderer, cfg, app.WithMaxFrames(4))
			Expect(err).NotTo(HaveOccurred())
			Expect(loop.Run(context.Background())).To(Succeed())
			Expect(driven.ticks).To(Equal(3))
			Expect(driven.Frames()).To(Equal(4))
		})
	})
})

var _ = Describe("NewLoop", func() {
	It("rejects a framebuffer smaller than the tiled grid", func() {
		grid := life.New(5, 5, 0)
		renderer, err := render.New(render.DefaultConfig(), grid.Size())
		Expect(err).NotTo(HaveOccurred())
		Expect(renderer.TileSize()).To(Equal(5))

		_, err = app.NewLoop(fb.New(headless.New(5, 5), 5, 5), grid, renderer, life.DefaultConfig())
		Expect(errors.Is(err, app.ErrInvalidConfig)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("needs 25x25 pixels"))

		loop, err := app.NewLoop(fb.New(headless.New(25, 25), 25, 25), grid, renderer, life.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(loop.Frame()).To(BeTrue())
	})
})

var _ = Describe("Run", func() {
	var cfg *app.Config

	BeforeEach(func() {
		cfg = app.DefaultConfig()
		cfg.Backend = headless.Name
		cfg.FrameInterval = 0
		cfg.MaxFrames = 5
		cfg.Grid.Width, cfg.Grid.Height = 16, 12
		cfg.Grid.Interval = 0
		cfg.Render.TileSize = 2
	})

	It("runs a bounded headless session", func() {
		stats, err := app.Run(context.Background(), cfg, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.Frames).To(Equal(5))
		Expect(stats.Generations).To(Equal(uint64(5)))
		Expect(stats.Peak).To(BeNumerically(">", 0))
	})

	It("rejects unknown backends", func() {
		cfg.Backend = "vga"
		_, err := app.Run(context.Background(), cfg, nil, nil)
		Expect(errors.Is(err, fb.ErrSurface)).To(BeTrue())
		Expect(errors.Is(err, fb.ErrUnknownBackend)).To(BeTrue())
	})

	It("rejects invalid configuration before opening a surface", func() {
		cfg.Grid.Width = 0
		_, err := app.Run(context.Background(), cfg, nil, nil)
		Expect(errors.Is(err, app.ErrInvalidConfig)).To(BeTrue())
	})
})
