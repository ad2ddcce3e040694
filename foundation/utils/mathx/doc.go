// Package mathx provides financial math primitives and number rendering.
//
// Package: mathx
// Title: Financial Math Utilities
// Description: Time value of money building blocks (growth and discount
//              factors under discrete or continuous compounding, annuities,
//              loan payments, simple returns) and exact decimal rendering of
//              float64 values with thousands grouping. Rendering goes through
//              shopspring/decimal so the shortest round-tripping digits are
//              shown without binary noise.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Decimal type, money and business calculations
// - 2026-10-16 v0.2.0: float64 compounding primitives, shopspring/decimal
//                      based rendering replaces the in-house Decimal type
//
// Usage:
//   c := mathx.Discrete(12)
//   fv := mathx.FutureValue(1000, 0.05, c, 10)
//   fmt.Println(mathx.FormatGrouped(fv)) // "1,647.009..."
package mathx
