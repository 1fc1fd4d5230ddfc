// Package cookbook implements an in-memory catalog of ingredients and recipes.
//
// An entry is either an Ingredient, which carries an atomic cook time, or a
// Recipe, which lists required items by name and per-unit quantity. Required
// items may reference ingredients or other recipes and are resolved lazily:
// a recipe may be registered before the entries it needs.
//
// # Components
//
//   - Store: name-keyed entry storage. Entries are insert-only.
//   - Validator: checks an EntryPayload and inserts the resulting entry.
//   - Aggregator: flattens a recipe into base ingredient quantities,
//     multiplying through nested recipes and rejecting cycles.
//   - SummaryBuilder: combines the flattened quantities with ingredient cook
//     times into a Summary.
//
// Cookbook ties the components together and records Prometheus metrics for
// registrations and summaries.
//
// # Usage
//
//	cb := cookbook.New()
//	two := 2
//	if err := cb.RegisterEntry(&cookbook.EntryPayload{
//	    Type:     "ingredient",
//	    Name:     "Flour",
//	    CookTime: &two,
//	}); err != nil {
//	    return err
//	}
//	...
//	s, err := cb.Summarize(ctx, "Pancake")
//
// Failures are *errors.StructuredError values carrying one of the catalog
// codes (INVALID_KIND, DUPLICATE_NAME, UNKNOWN_ENTRY, CYCLIC_REFERENCE, ...).
// A failed registration leaves the catalog unchanged and a failed summary
// returns no partial result.
//
// # Catalog files
//
// LoadCatalog seeds a Cookbook from a YAML or JSON Catalog document, read
// from a local path or an http(s) URL:
//
//	kind: Catalog
//	apiVersion: cookbook.nvidia.com/v1alpha1
//	entries:
//	  - {type: ingredient, name: Flour, cookTime: 2}
//	  - {type: recipe, name: Pancake, requiredItems: [{name: Flour, quantity: 2}]}
//
// # HTTP
//
// Handler exposes HandleEntry and HandleSummary for use with pkg/server.
package cookbook
