// Package errors is the error vocabulary shared by every layer of arcanum-api.
//
// Errors carry a Code, a caller-safe Message, an optional Cause and free-form
// Meta. The codes double as the service's error kinds:
//
//   - CodeInvalidArgument: a creation request or update failed validation.
//     Field level details travel in Meta[MetaValidationErrors].
//   - CodeNotFound: the character or inventory item does not exist, or is not
//     owned by the caller. Both cases use the same message.
//   - CodeUnauthenticated / CodePermissionDenied: missing caller identity, or an
//     identity that does not match the resource owner.
//   - CodeDataLoss: stored data breaks an invariant (a character without its
//     ability scores or game state).
//
// Repositories translate storage failures:
//
//	if err == redis.Nil {
//	    return nil, errors.NotFoundf("character %s not found", id)
//	}
//	return nil, errors.Wrap(err, "failed to load character")
//
// Orchestrators aggregate input problems with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name_es", input.NameEs, vb)
//	errors.ValidateNonNegative("current_gold", gold, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Handlers convert to gRPC with ToGRPCError, which attaches
// errdetails.ErrorInfo and errdetails.BadRequest; clients reverse it with
// FromGRPCError.
package errors
