// Package recording provides a canvas that records drawing operations as
// typed commands instead of rasterizing them.
//
// A [Recorder] implements shapes.Canvas. Shapes render onto it exactly as
// they would onto a raster canvas; the resulting [Recording] can be
// inspected command by command or played back onto any other canvas.
//
// This design is inspired by Skia's SkPicture and Cairo's recording surface.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	_ = shapes.Render(rec, shapes.NewCircle(5, 5, 3, nil))
//	r := rec.FinishRecording()
//
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//	// Save, BeginPath, Arc, ClosePath, Fill, Restore
//
// # Playback
//
//	c, _ := ggcanvas.New(800, 600)
//	if err := r.Playback(c); err != nil {
//	    return err
//	}
//
// # State
//
// The Recorder keeps the same property state as a raster canvas, with a
// save stack, so a property assignment that a real canvas would reject
// is rejected (and not recorded) here too. Property reads the current
// value of a property.
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back from multiple goroutines.
package recording
