// Package keys derives the canonical document key shared by metadata records,
// scan folders and segment filenames.
//
// A key is an opaque string such as "Energetica_1969". Three independent
// derivation functions produce it:
//
//   - FromURL: the path segment after /view/ in a record URL.
//   - FromFolder: "<Title>, <year> ..." folder names, with spaces removed and
//     only the ș/Ș/ț/Ț diacritics folded to ASCII.
//   - FromFilename: the literal "<Title>_<year>" prefix of a segment filename.
//
// Other diacritics are intentionally left untouched in folder names. Widening
// the folding rule changes which folders join which records.
//
// # Usage
//
//	k, ok := keys.FromFolder("Energetica, 1969 (Anul 17, nr. 2-8)")
//	// k == "Energetica_1969", ok == true
package keys
