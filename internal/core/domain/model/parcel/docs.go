// Package parcel contains the Parcel aggregate: an individual package a
// customer forwards through the warehouse. The aggregate owns identity and
// current lifecycle state; transition legality is the workflow package's
// concern and persistence is the repository's.
package parcel
