// SPDX-License-Identifier: MIT

// Package geometry computes area, perimeter, surface area and volume for a
// fixed set of plane and solid shapes.
//
// Shapes are plain values tagged by a Kind (Shape2D, Shape3D) rather than
// an interface hierarchy: the set is closed, and Compute2D / Compute3D
// switch over every kind. Dimensions are stored in the A and B fields; see
// each constructor for their meaning.
package geometry
