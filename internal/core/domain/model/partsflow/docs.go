// Package partsflow models the parts reservation and issuance workflow: a
// technician's request moves Requested -> Prepared -> Ready for Release ->
// Issued, with the inventory debit happening exactly once at the Issued
// transition and the technician signing for receipt afterwards.
package partsflow
