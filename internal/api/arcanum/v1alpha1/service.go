package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// unary builds a grpc.MethodHandler that decodes Req, runs the interceptor
// chain and calls the typed server method.
func unary[Req any, Resp any](
	fullMethod string,
	call func(srv any, ctx context.Context, req *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// invoke performs a unary call with the JSON content subtype.
func invoke[Resp any](
	ctx context.Context,
	cc grpc.ClientConnInterface,
	method string,
	in any,
	opts []grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

// LocalizedRef is a catalog id with both names and the name in the
// requested language.
type LocalizedRef struct {
	ID          string `json:"id"`
	NameEs      string `json:"nameEs"`
	NameEn      string `json:"nameEn"`
	DisplayName string `json:"displayName"`
}
