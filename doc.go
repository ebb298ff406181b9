// Package invcanvas manages input and rendering for inventory windows drawn
// on a single scaled surface.
//
// A [Manager] sits between a host (a window, a canvas, a test fake) and an
// ordered list of [Widget] children. It maps raw pointer positions from the
// host's client rectangle into a logical coordinate space, dispatches
// pointer, wheel and key input to every child, and drives a per-frame render
// loop that can be preempted by a transient blocking message.
//
// # Quick start
//
// The [ebitenhost] package provides a ready-made host on [Ebitengine]. It
// serves as the manager's [Surface], [InputSource] and [FrameScheduler]:
//
//	host, err := ebitenhost.New(ebitenhost.RunConfig{
//		Title: "Inventory", Width: 800, Height: 600,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	mgr := invcanvas.NewManager(host, host, host)
//	mgr.AddChild(window)
//	mgr.StartRendering()
//	log.Fatal(host.Run())
//
// # Widgets
//
// Children implement [Widget]. Embed [WindowBase] for the scale, offset and
// layout size bookkeeping and add the input and render methods:
//
//	type bag struct {
//		invcanvas.WindowBase
//		mgr *invcanvas.Manager
//	}
//
//	func (b *bag) Render(s invcanvas.Surface, shouldRender bool) {
//		b.mgr.Clear()
//		s.FillRect(b.Bounds(), invcanvas.Color{R: 0.2, G: 0.2, B: 0.25, A: 1})
//	}
//
// The first child added becomes the primary widget. A primary-button press
// outside its bounds calls [Manager.OnClose] instead of reaching the
// children. [Manager.SetPrimary] picks a different one.
//
// # Coordinates
//
// Widgets see logical coordinates. The device transform is the logical
// scale times the surface's device pixel ratio; [Manager.ToLogical] and
// [Manager.ToDevice] convert between the two.
//
// # Testing
//
// Input can be injected ([Manager.InjectClick], [Manager.InjectKey] and
// friends) and replayed from JSON scripts with [LoadTestScript]. Scripts may
// queue screenshots, which are written as PNG files when the surface
// implements [Snapshotter]. Dispatched input can be mirrored to an ECS world
// through an [EventSink]; see the [Donburi] adapter in invcanvas/ecs.
//
// Widgets can be animated into place with [Manager.SlideInUp] (via [gween]).
//
// [Ebitengine]: https://ebitengine.org
// [ebitenhost]: https://pkg.go.dev/github.com/phanxgames/invcanvas/ebitenhost
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package invcanvas
