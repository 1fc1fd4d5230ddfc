// Package normalize turns free-form recipe names into their canonical
// display form. It is independent of the catalog: the catalog stores names
// exactly as registered and never calls into this package.
package normalize
