// Package folio is an interactive portfolio page for [Ebitengine].
//
// A [Page] renders a scrolling column of content sections over an animated
// particle backdrop and layers the usual landing-page behaviors on top: a
// loading overlay, reveal-on-scroll, a typewriter line, animated counters and
// skill bars, a navbar with a mobile menu, smooth anchor scrolling, a contact
// form with validation, toast notifications, hover effects and a resume
// download button.
//
// # Quick start
//
//	content, err := folio.LoadContentFile("content.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	page := folio.NewPage(content)
//	if err := folio.Run(page, folio.RunConfig{Width: 1280, Height: 720}); err != nil {
//		log.Fatal(err)
//	}
//
// Page implements [ebiten.Game], so it can also be driven by your own loop.
//
// # Particle backdrop
//
// [ParticleField] is the core. It owns up to 100 drifting particles (one per
// 15000px² of viewport), links every pair closer than 150px with a line whose
// alpha fades with distance, and gently pulls particles toward the pointer.
// The field draws through the [Surface] interface and runs without a window,
// which keeps it testable:
//
//	f := folio.NewParticleField(folio.FieldConfig{})
//	f.Resize(800, 600) // 32 particles
//	f.Start()
//	f.Update()
//	f.Draw(surface)
//
// Widgets never share state with the field or with each other. Each one reads
// the page viewport and scroll offset and subscribes to page input with
// [Page.OnPointerMove], [Page.OnClick] and [Page.OnScroll].
//
// # Content
//
// Pages are built from a JSON [Content] document. Sections carry the pieces
// they need: tags, skills, stats, cards, a resume path or the contact form.
// The page only builds widgets whose anchors are present.
//
// # Testing and automation
//
// Input can be injected with [Page.InjectMove], [Page.InjectClick],
// [Page.InjectScroll], [Page.InjectText] and friends, one event per frame.
// [LoadScript] plays a JSON script of such steps, with waits and PNG
// screenshots, for visual checks.
//
// Tweens use [gween]; springs use [harmonica]. Page events can be forwarded
// to a [Donburi] world with the folio/ecs adapter.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
// [Donburi]: https://github.com/yohamta/donburi
package folio
