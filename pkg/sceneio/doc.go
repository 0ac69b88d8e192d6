// Package sceneio provides JSON import and export for geometry scenes.
//
// # JSON Format
//
// A scene is a JSON object with a single "shapes" array. Each shape has a
// "kind" discriminator and kind-specific fields:
//
//	{
//	  "shapes": [
//	    {"kind": "region", "outlines": [[[0,0],[10,0],[10,10],[0,10]]], "color": [1,0,0,1]},
//	    {"kind": "path", "points": [[0,0],[5,5]], "closed": true},
//	    {"kind": "mesh", "name": "cube"}
//	  ]
//	}
//
// Points are [x, y] pairs; colors are [r, g, b, a] with channels in [0, 1].
// The "mesh" kind stands in for 3D geometry: it decodes to a placeholder
// that the serializer skips, so scenes mixing 2D and 3D shapes exercise the
// partial-input path end to end. Unknown kinds also decode to placeholders
// rather than failing the whole scene.
//
// # Import and Export
//
// Use [ReadSceneFile] to read a scene from a file path, or [ReadScene] to
// read from any io.Reader. Both return the decoded objects as []any, the
// shape the serializer accepts. [WriteScene] and [WriteSceneFile] invert
// the mapping for round-trip processing.
//
// Validation failures carry the INVALID_SCENE error code; a missing input
// file carries FILE_NOT_FOUND.
package sceneio
