// Package archive packages rendered frames into a single zip artifact.
//
// Entries are buffered in memory in insertion order and written out only
// by Finalize, so a failed batch never exposes a partial archive:
//
//	b := archive.NewBuilder(archive.WithCollisionPolicy(archive.Disambiguate))
//	b.Add("certificate_ann.png", frame1)
//	b.Add("certificate_ann.png", frame2) // stored as certificate_ann_2.png
//
//	art, err := b.Finalize()
//	if err != nil {
//		return err
//	}
//	path, err := art.Save(outDir) // certificates_batch_<unix-ms>.zip
//
// With the default Overwrite policy a second entry with the same name
// replaces the first one in place.
package archive
