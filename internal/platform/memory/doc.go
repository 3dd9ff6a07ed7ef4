// Package memory provides process-local implementations of the store
// interfaces. They back the "memory" database driver and the end-to-end tests
// of the service and API layers.
//
// All three stores share one mutex-guarded dataset, so deleting a podcast
// removes its episodes atomically. Entities are copied on the way in and out;
// callers never hold references into the dataset.
package memory
