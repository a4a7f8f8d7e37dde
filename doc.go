/*
Package audiotag provides a format-agnostic view of embedded audio
metadata.

The package itself contains the generic Metadata contract shared by all
concrete tag formats, and a copy operation for transferring fields
between two tags, restricted to a set of field categories.

Concrete tag codecs live in subpackages; the id3v2 package implements
the versioned binary tag format used by most supported containers.

Accessing and manipulating fields

There are two ways to work with a tag: through the getter and setter
methods of the Metadata contract (one per standard field), or, for
format-specific data, by working directly with a concrete tag's
underlying frames.
*/
package audiotag
