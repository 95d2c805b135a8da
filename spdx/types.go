// Package spdx holds the typed SPDX document model and the post-processing
// applied to scanner output: sanitizing package-manager self-noise and
// merging many per-package documents into one per ecosystem.
package spdx

// Ecosystem tags used in output file names and noise filtering.
const (
	EcosystemPython = "python"
	EcosystemNodejs = "nodejs"
	EcosystemJava   = "java"
)

const RelationshipDependsOn = "DEPENDS_ON"

type CreationInfo struct {
	Created            string   `json:"created,omitempty"`
	Creators           []string `json:"creators,omitempty"`
	LicenseListVersion string   `json:"licenseListVersion,omitempty"`
}

type Checksum struct {
	Algorithm     string `json:"algorithm"`
	ChecksumValue string `json:"checksumValue"`
}

type ExternalRef struct {
	ReferenceCategory string `json:"referenceCategory"`
	ReferenceType     string `json:"referenceType"`
	ReferenceLocator  string `json:"referenceLocator"`
}

type Package struct {
	SPDXID                string        `json:"SPDXID"`
	Name                  string        `json:"name"`
	VersionInfo           string        `json:"versionInfo,omitempty"`
	DownloadLocation      string        `json:"downloadLocation,omitempty"`
	FilesAnalyzed         *bool         `json:"filesAnalyzed,omitempty"`
	SourceInfo            string        `json:"sourceInfo,omitempty"`
	LicenseConcluded      string        `json:"licenseConcluded,omitempty"`
	LicenseDeclared       string        `json:"licenseDeclared,omitempty"`
	CopyrightText         string        `json:"copyrightText,omitempty"`
	Checksums             []Checksum    `json:"checksums,omitempty"`
	ExternalRefs          []ExternalRef `json:"externalRefs,omitempty"`
	PrimaryPackagePurpose string        `json:"primaryPackagePurpose,omitempty"`
	Supplier              string        `json:"supplier,omitempty"`
	Attribution           []string      `json:"attributionTexts,omitempty"`
}

type Relationship struct {
	SpdxElementId      string `json:"spdxElementId"`
	RelationshipType   string `json:"relationshipType"`
	RelatedSpdxElement string `json:"relatedSpdxElement"`
}

type Document struct {
	SPDXVersion       string         `json:"spdxVersion"`
	DataLicense       string         `json:"dataLicense"`
	SPDXID            string         `json:"SPDXID"`
	Name              string         `json:"name"`
	DocumentNamespace string         `json:"documentNamespace"`
	CreationInfo      *CreationInfo  `json:"creationInfo,omitempty"`
	Packages          []Package      `json:"packages"`
	Relationships     []Relationship `json:"relationships,omitempty"`
}
