// Package integrity checks that the design datasets can be served.
//
// # Checks Provided
//
//   - Snapshots: every dataset has its {prefix}/{CacheName}.json object in
//     the bucket, so the storage source can serve it.
//   - Chains: every room upgrade chain resolves; a parent id naming no
//     record and loops of parent links are reported.
//   - Drift: each snapshot is compared record by record with the live game
//     API (ids only live, ids only stored, differing fields).
//
// Missing and drifted snapshots can be refreshed from the live source
// (?fix=true). A payload is stored only when it parses as a design list.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/snapshots : Runs the snapshot check (supports ?fix=true).
//   - GET /integrity/chains : Runs the room chain check.
//   - GET /integrity/drift : Runs the drift check (supports ?fix=true).
package integrity
