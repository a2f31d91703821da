// Package classification provides the classification metadata used to enrich
// assembled panels with human-readable names.
//
// A classification is a lookup table from an entity id (product, location,
// industry, occupation) to descriptive attributes: name, code and aggregation
// level. The Registry holds the fixed set of classifications keyed by the
// foreign-key column they enrich (product_id, location_id, industry_id,
// occupation_id), and Merge left-joins every applicable classification onto an
// arbitrary table without dropping rows.
//
// Classifications can be loaded from a directory of CSV files, a single Excel
// workbook with one sheet per classification, or the application's Postgres
// database. All three stores satisfy the Store interface and produce the same
// Registry.
package classification
