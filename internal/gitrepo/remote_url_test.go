package gitrepo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/oops/internal/gitrepo"
)

const (
	testSCPStyleRemoteCaseNameConstant     = "scp_style_ssh"
	testSSHSchemeRemoteCaseNameConstant    = "ssh_scheme"
	testHTTPSRemoteCaseNameConstant        = "https"
	testHTTPSNoSuffixCaseNameConstant      = "https_without_git_suffix"
	testEmptyRemoteCaseNameConstant        = "empty_remote"
	testUnsupportedRemoteCaseNameConstant  = "unsupported_scheme"
	testMalformedSSHRemoteCaseNameConstant = "malformed_ssh"
)

func TestParseRemoteURL(testInstance *testing.T) {
	testCases := []struct {
		name        string
		remote      string
		expected    gitrepo.RemoteURL
		expectError bool
	}{
		{
			name:   testSCPStyleRemoteCaseNameConstant,
			remote: "git@github.com:example/project.git",
			expected: gitrepo.RemoteURL{
				Protocol:   gitrepo.RemoteProtocolSSH,
				Host:       "github.com",
				Owner:      "example",
				Repository: "project",
			},
		},
		{
			name:   testSSHSchemeRemoteCaseNameConstant,
			remote: "ssh://git@github.com/example/project.git",
			expected: gitrepo.RemoteURL{
				Protocol:   gitrepo.RemoteProtocolSSH,
				Host:       "github.com",
				Owner:      "example",
				Repository: "project",
			},
		},
		{
			name:   testHTTPSRemoteCaseNameConstant,
			remote: "https://github.com/example/project.git",
			expected: gitrepo.RemoteURL{
				Protocol:   gitrepo.RemoteProtocolHTTPS,
				Host:       "github.com",
				Owner:      "example",
				Repository: "project",
			},
		},
		{
			name:   testHTTPSNoSuffixCaseNameConstant,
			remote: "https://github.com/example/project",
			expected: gitrepo.RemoteURL{
				Protocol:   gitrepo.RemoteProtocolHTTPS,
				Host:       "github.com",
				Owner:      "example",
				Repository: "project",
			},
		},
		{
			name:        testEmptyRemoteCaseNameConstant,
			remote:      "   ",
			expectError: true,
		},
		{
			name:        testUnsupportedRemoteCaseNameConstant,
			remote:      "ftp://github.com/example/project",
			expectError: true,
		},
		{
			name:        testMalformedSSHRemoteCaseNameConstant,
			remote:      "git@github.com",
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			parsedRemote, parseError := gitrepo.ParseRemoteURL(testCase.remote)

			if testCase.expectError {
				var remoteURLParseError gitrepo.RemoteURLParseError
				require.ErrorAs(testInstance, parseError, &remoteURLParseError)
				return
			}

			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expected, parsedRemote)
			require.Equal(testInstance, testCase.expected.Owner+"/"+testCase.expected.Repository, parsedRemote.OwnerRepository())
		})
	}
}
