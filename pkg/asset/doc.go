// Package asset loads and decodes the images a layout refers to.
//
// Sources are plain strings and are routed by scheme:
//
//	data:image/png;base64,iVBORw0...   inline data URI
//	file:///srv/assets/bg.png          local file
//	assets/bg.png                      local file, relative to the base dir
//	s3://bucket/templates/bg.png       S3 object (requires a storage.Fetcher)
//	s3:///templates/bg.png             S3 object in the default bucket
//
// Every payload is sniffed before decoding and must look like an image.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
//
// # Loading a layout's assets
//
//	router := asset.NewRouter(
//		asset.WithBaseDir(filepath.Dir(layoutPath)),
//		asset.WithFetcher(store),
//	)
//	loader := asset.NewCached(router, 64)
//
//	images, err := asset.LoadAll(ctx, loader, lay.Sources())
//	if err != nil {
//		// errors.Is(err, asset.ErrLoadFailed)
//	}
//
// LoadAll fetches distinct sources concurrently and fails as soon as any
// source fails.
package asset
