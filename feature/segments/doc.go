// Package segments finds segment PDFs on disk and groups them by document key.
//
// Two locations are scanned:
//
//   - The hierarchical root is walked recursively. Every subfolder whose name
//     follows "<Title>, <year>" is one document; segment files directly inside
//     it are tagged OriginHierarchical.
//   - The flat root is listed without recursion. Segment files there are keyed
//     from their own filename and tagged OriginFlat.
//
// A segment file ends in "__pages<start>-<end>.pdf". Anything else is ignored.
// A missing root is logged and produces an empty scan.
//
// When page verification is enabled, VerifyPages opens each PDF and compares
// its real page count with the range in its name.
package segments
