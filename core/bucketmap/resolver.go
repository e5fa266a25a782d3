package bucketmap

import "strings"

// Resolver composes bucket names and object keys from (container, file)
// pairs. It is the single place where the two storage layouts diverge:
//
//   - Prefix mode (FixedBucket set): every container is a "name/" key prefix
//     inside the fixed bucket, and files are keys "container/file".
//   - Bucket mode (FixedBucket empty): every container is a real bucket and
//     files are plain keys within it.
//
// All gateway operations consume the resolver instead of re-evaluating the
// mode themselves, so a key composed by Locate always decodes back to its
// (container, file) pair via RelativeName.
type Resolver struct {
	// FixedBucket is the bucket hosting all containers in prefix mode,
	// empty in bucket mode.
	FixedBucket string
}

// New creates a resolver. Pass the fixed bucket name, or "" for bucket mode.
func New(fixedBucket string) Resolver {
	return Resolver{FixedBucket: fixedBucket}
}

// PrefixMode reports whether containers are simulated as key prefixes.
func (r Resolver) PrefixMode() bool {
	return r.FixedBucket != ""
}

// Locate returns the bucket and object key addressing file inside container.
func (r Resolver) Locate(container, file string) (bucket, key string) {
	if r.PrefixMode() {
		return r.FixedBucket, container + "/" + file
	}
	return container, file
}

// ContainerPrefix returns the bucket and key prefix under which all of the
// container's files live. The prefix is empty in bucket mode.
func (r Resolver) ContainerPrefix(container string) (bucket, prefix string) {
	if r.PrefixMode() {
		return r.FixedBucket, container + "/"
	}
	return container, ""
}

// MarkerKey returns the bucket and the zero-byte folder-marker key that
// represents the container itself in prefix mode. In bucket mode there is no
// marker; the container's existence is the bucket's.
func (r Resolver) MarkerKey(container string) (bucket, key string) {
	if r.PrefixMode() {
		return r.FixedBucket, container + "/"
	}
	return container, ""
}

// RelativeName strips the container's prefix from a full object key,
// yielding the file name as the caller knows it. The folder marker itself
// maps to "".
func (r Resolver) RelativeName(container, key string) string {
	_, prefix := r.ContainerPrefix(container)
	return strings.TrimPrefix(key, prefix)
}
