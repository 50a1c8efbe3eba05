// Package batch renders certificates for many recipients and packages them
// into one zip archive.
//
// # Batch generation
//
//	gen := batch.New(
//		batch.WithLoader(asset.NewCached(asset.NewRouter(asset.WithBaseDir(dir)), 32)),
//		batch.WithLogger(log),
//	)
//
//	art, err := gen.Generate(ctx, lay, recipients, func(p batch.Progress) {
//		fmt.Printf("%d/%d %s\n", p.Current, p.Total, p.CurrentName)
//	})
//	if err != nil {
//		// errors.Is(err, batch.ErrAssetLoad), batch.ErrRender, batch.ErrArchive ...
//		return err
//	}
//	_, err = art.Save(outDir)
//
// Generate loads every image once, then renders recipients strictly in
// input order onto a single reused surface. Each frame is encoded as PNG
// and stored as certificate_<sanitized name>.png. The archive is returned
// only if every recipient succeeded; any failure aborts the run and no
// artifact is produced.
//
// # Progress
//
// The progress callback runs synchronously on the generating goroutine.
// It receives a Progress value, a snapshot that later events never modify.
// Events arrive in order: one processing event before any work, one per
// recipient with Current set to its 0-based index, and finally exactly one
// complete event (Current == Total) or one error event.
//
// # Cancellation
//
// Cancelling ctx stops the run before the next recipient; the run fails
// with ErrCanceled.
//
// # Preview
//
// Preview renders a single recipient to PNG bytes without progress events
// or an archive.
package batch
