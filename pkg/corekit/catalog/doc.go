/*
Package catalog applies declarative manifests to factory registries.

A manifest is a YAML or JSON document selecting and aliasing the
products a string-keyed factory should expose, typically loaded at
startup:

	products:
	  - id: Apple
	    aliases: [apple]
	  - id: Pear
	    enabled: false

Applying this manifest to a factory unregisters "Pear" and registers
"apple" with the same production function as "Apple". Identifiers the
factory does not know are collected in the returned Report, not treated
as errors; only structural manifest problems (duplicate entries, an id
listed as its own alias) fail the application, and they do so before the
factory is touched.

# Loading

Manifests load with the format chosen by file extension:

	m, err := catalog.FromFile("products.yaml")

or directly from bytes with FromYAML and FromJSON.

# Applying

	report, err := catalog.Apply(ctx, plantation, m,
	    catalog.WithLogger(logger),
	    catalog.WithTracing(true),
	)

Each application gets a unique ApplyID carried in the report, log
records, and the optional OpenTelemetry span.
*/
package catalog
