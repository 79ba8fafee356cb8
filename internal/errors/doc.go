// Package errors provides coded errors shared by the PokeAPI client, the
// orchestrator and both transports.
//
// Every failure carries a Code that each transport maps on its own: HTTP via
// Code.HTTPStatus and gRPC via ToGRPCError. Metadata rides along for logs and,
// over gRPC, as a google.protobuf.Struct status detail.
//
// Creating errors:
//
//	err := errors.NotFoundf("pokemon %q not found", idOrName)
//	err := errors.Unavailablef("PokeAPI error %d for %s", status, url).
//	    WithMeta("url", url).
//	    WithMeta("status", status)
//
// Wrapping keeps the code of a coded cause; anything else becomes internal,
// except context cancellation and deadlines which keep their meaning:
//
//	if err := decode(body); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeInternal, "failed to decode species")
//	}
//
// Configuration is checked with the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateURL("pokeapi.base_url", cfg.BaseURL, vb)
//	errors.ValidateRange("pokeapi.concurrency", cfg.Concurrency, 1, 64, vb)
//	return vb.Build()
package errors
