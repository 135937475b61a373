/*
Package catalog holds the embedded description of every lesson in the guide.

The catalog is a YAML document (lessons.yaml) compiled into the binary. Load decodes it
strictly: unknown keys, duplicate ids or numbers and missing titles are errors, so a
typo in the catalog fails fast instead of silently dropping a lesson.
*/
package catalog
