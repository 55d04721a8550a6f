// SPDX-License-Identifier: GPL-3.0-only

package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidIdentifier(t *testing.T) {
	assert.True(t, ValidIdentifier("0000000001"))
	assert.True(t, ValidIdentifier("a"))
	assert.False(t, ValidIdentifier(""))
	assert.False(t, ValidIdentifier("00000000011"))
}

func TestValidContentBoundaries(t *testing.T) {
	assert.True(t, ValidContent(strings.Repeat("a", 250)))
	assert.False(t, ValidContent(strings.Repeat("a", 251)))
	assert.False(t, ValidContent(""))
	assert.False(t, ValidContent(" \t\n "))
	assert.True(t, ValidContent("Hi"))
	// 250 multi-byte characters are still 250 characters.
	assert.True(t, ValidContent(strings.Repeat("é", 250)))
}

func TestContentExcess(t *testing.T) {
	assert.Equal(t, 0, ContentExcess(strings.Repeat("a", 250)))
	assert.Equal(t, 1, ContentExcess(strings.Repeat("a", 251)))
	assert.Equal(t, 5, ContentExcess(strings.Repeat("a", 255)))
	assert.Equal(t, 0, ContentExcess(""))
}

func TestValidUsername(t *testing.T) {
	assert.True(t, ValidUsername("kyl_1"))
	assert.True(t, ValidUsername("nate_"))
	assert.False(t, ValidUsername("kyle!!!!!!!"))
	assert.False(t, ValidUsername("kyle1"))
	assert.False(t, ValidUsername("ky_le1"))
}

func TestValidPasswordComplexity(t *testing.T) {
	assert.True(t, ValidPasswordComplexity("Ch&&sec@ke99!"))
	assert.False(t, ValidPasswordComplexity("password"))
	assert.False(t, ValidPasswordComplexity("Password1"))
}

func TestValidRecipient(t *testing.T) {
	assert.True(t, ValidRecipient("+27838968976"))
	assert.False(t, ValidRecipient("0838968976"))
	assert.False(t, ValidRecipient("+2783896897"))
	assert.False(t, ValidRecipient("+278389689766"))
	assert.False(t, ValidRecipient("+2783896897a"))
	assert.False(t, ValidRecipient(""))
}

func TestPrefixRuleIsConfigurable(t *testing.T) {
	rule := PrefixRule{Prefix: "+27", Digits: 9}
	assert.True(t, rule.Valid("+27838968976"))
	assert.False(t, rule.Valid("+44838968976"))
	assert.Contains(t, rule.Hint(), "+27")
}

func TestLocalRule(t *testing.T) {
	assert.True(t, SouthAfricanLocalRule.Valid("0712345678"))
	assert.False(t, SouthAfricanLocalRule.Valid("0812345678"))
	assert.False(t, SouthAfricanLocalRule.Valid("07123456789"))
}

func TestCarrierRule(t *testing.T) {
	rule := CarrierRule{DefaultRegion: "ZA"}
	assert.True(t, rule.Valid("+27838968976"))
	assert.False(t, rule.Valid("+1"))
	assert.False(t, rule.Valid("not a number"))
	assert.False(t, rule.Valid(""))
}

func TestRuleForProfile(t *testing.T) {
	rule, err := RuleForProfile("")
	require.NoError(t, err)
	assert.Equal(t, E164Rule, rule)

	rule, err = RuleForProfile("LOCAL")
	require.NoError(t, err)
	assert.Equal(t, SouthAfricanLocalRule, rule)

	rule, err = RuleForProfile("carrier")
	require.NoError(t, err)
	assert.IsType(t, CarrierRule{}, rule)

	_, err = RuleForProfile("martian")
	assert.Error(t, err)
}

func TestDescribeRecipient(t *testing.T) {
	region, _ := DescribeRecipient("+27838968976")
	assert.Equal(t, "ZA", region)

	region, carrier := DescribeRecipient("garbage")
	assert.Empty(t, region)
	assert.Empty(t, carrier)
}
