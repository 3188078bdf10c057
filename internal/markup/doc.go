// Package markup builds the styled fragment that replaces a text leaf.
//
// A Fragment is a list of runs. A run is either plain text or a styled marker
// carrying a class, the text it shows, and the full text it matched. Markers
// created by non-hide rules wrap other runs instead of holding text directly.
//
// Rendered fragments look like this for the rule {{open:\*\*}}(.*?){{close:\*\*}}
// with class bold-mark and hide enabled, applied to "say **hi** now":
//
//	<span>say <span class="bold-mark" data-contents="**hi**">hi</span> now</span>
//
// The markup string always goes through a bluemonday policy before it is
// parsed back into nodes, so nothing but span, class and data-contents can
// reach the document.
package markup
