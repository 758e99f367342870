// Package hstoken issues and verifies HMAC-signed JSON Web Tokens.
//
// Features:
// - Encoding and decoding of the compact three-part JWT form (header.payload.signature)
// - HS256, HS384 and HS512 signing with constant-time signature verification
// - A claims pipeline that injects standard claims on encode and validates them on decode
// - Pluggable secret retrieval, JSON codec and claim policy via the TokenConfig capability set
// - The verification algorithm always comes from trusted configuration, never from the token header
package hstoken
