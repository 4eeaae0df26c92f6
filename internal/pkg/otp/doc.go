// Package otp provides helpers for generating short numeric one-time
// passcodes (OTP).
//
// These codes are delivered out-of-band (SMS or email) and verified against a
// stored copy, so generation only needs to be uniform and unpredictable; there
// is no shared-secret algorithm involved.
package otp
