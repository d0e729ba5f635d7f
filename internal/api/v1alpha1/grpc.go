// Package v1alpha1 defines the battle and character gRPC services: request and
// response messages in the binary wire layout, service descriptors and clients.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/uzochukwuV/massacombat/internal/wire"
)

// ServicePackage prefixes every service name
const ServicePackage = "battle.api.v1alpha1"

// message is the pointer side of a request type
type message[T any] interface {
	*T
	wire.Message
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler
func unaryHandler[S any, Req any, PReq message[Req], Resp any](
	fullMethod string,
	call func(srv S, ctx context.Context, req PReq) (Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(PReq))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// invoke calls a unary method with the binary codec selected
func invoke[Resp any, PResp message[Resp]](ctx context.Context, cc grpc.ClientConnInterface, method string, in wire.Message, opts []grpc.CallOption) (PResp, error) {
	out := PResp(new(Resp))
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(wire.CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}
